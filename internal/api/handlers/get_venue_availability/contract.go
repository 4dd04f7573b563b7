package get_venue_availability

import (
	"context"

	getVenueAvailability "github.com/avetra/venue-booking-service/internal/usecase/get_venue_availability"
)

type GetVenueAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getVenueAvailability.Request) (*getVenueAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
