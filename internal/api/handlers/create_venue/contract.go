package create_venue

import (
	"context"

	venueModels "github.com/avetra/venue-booking-service/internal/service/venues/models"
)

type VenueService interface {
	Create(ctx context.Context, req *venueModels.CreateVenueRequest) (*venueModels.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
