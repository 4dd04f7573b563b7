package domain

import "time"

// VenueState operational state of a venue
type VenueState string

const (
	VenueAvailable   VenueState = "available"
	VenueMaintenance VenueState = "maintenance"
)

// Venue represents a bookable event venue
// Treated as immutable reference data within a single availability lookup
type Venue struct {
	ID            int64
	Name          string
	Capacity      int
	SquareFootage int
	Location      *string
	Description   *string

	// Billing amounts; FullDayAmount/HalfDayAmount are slot-specific,
	// TotalAmount is the legacy generic fallback
	TotalAmount   float64
	DepositAmount float64
	FullDayAmount float64
	HalfDayAmount float64

	State VenueState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the venue accepts new bookings
func (v *Venue) IsBookable() bool {
	return v.State == VenueAvailable
}
