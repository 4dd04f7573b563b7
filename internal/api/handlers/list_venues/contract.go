package list_venues

import (
	"context"

	venueModels "github.com/avetra/venue-booking-service/internal/service/venues/models"
)

type VenueService interface {
	List(ctx context.Context) (*venueModels.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
