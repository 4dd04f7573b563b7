package get_venue_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetra/venue-booking-service/internal/domain"
	venueRepo "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

// UseCase use case получения доступности площадки на дату
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, venueRepo VenueRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
// Доступность всегда выводится из актуального набора бронирований
// и нигде не хранится
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetVenueAvailability: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetVenueAvailability: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	date := domain.TruncateToDay(req.Date)

	filter := domain.VenueBookingsFilter{
		VenueID:          &req.VenueID,
		StartDate:        &date,
		EndDate:          &date,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetVenueAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	avail := domain.ComputeDayAvailability(req.VenueID, date, bookings)

	return toResponse(avail), nil
}
