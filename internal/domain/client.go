package domain

import "time"

// Client represents a client contact record
type Client struct {
	ID      int64
	Name    string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
