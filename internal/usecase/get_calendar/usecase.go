package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetra/venue-booking-service/internal/domain"
	venueRepo "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

// UseCase use case получения календарной раскраски площадки
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

// Execute выполняет use case календарной раскраски
// Отмененные бронирования выбираются тоже: день только с отменами получает
// свою аудиторскую раскраску, хотя в бейдж активных они не попадают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidRange)
	}

	from := domain.TruncateToDay(req.From)
	to := domain.TruncateToDay(req.To)

	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}
	if int(to.Sub(from).Hours()/24) > MaxRangeDays {
		return nil, fmt.Errorf("%w: range is longer than %d days", ErrInvalidRange, MaxRangeDays)
	}

	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetCalendar: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetCalendar: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	filter := domain.VenueBookingsFilter{
		VenueID:          &req.VenueID,
		StartDate:        &from,
		EndDate:          &to,
		IncludeCancelled: true,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	days := domain.DecorateRange(from, to, bookings)

	return toResponse(req.VenueID, days), nil
}
