package check_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetra/venue-booking-service/internal/domain"
	venueRepo "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

// UseCase use case интерактивной проверки доступности слота
// Использует тот же доменный валидатор, что и создание/редактирование
// бронирования: форма и транзакция записи не могут разойтись в правилах
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

// Execute выполняет проверку доступности слота без записи в БД
// Результат советующий: окончательная проверка повторяется в сериализуемой
// транзакции при сохранении
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Неполная форма - не ошибка: проверять еще нечего
	if req.VenueID == 0 || req.Date.IsZero() {
		return &Response{Available: false, Reason: ReasonIncomplete}, nil
	}

	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CheckSlot: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CheckSlot: failed to get venue id=%d: %v", req.VenueID, err)
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
		uc.logger.Error("CheckSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slotReq := domain.SlotRequest{
		VenueID:          req.VenueID,
		Date:             date,
		IsFullDay:        req.IsFullDay,
		TimeOfDay:        req.TimeOfDay,
		ExcludeBookingID: req.ExcludeBookingID,
	}

	return toDecision(domain.ValidateSlotRequest(slotReq, bookings)), nil
}

// toDecision переводит результат доменного валидатора в решение для формы
func toDecision(err error) *Response {
	switch {
	case err == nil:
		return &Response{Available: true}
	case errors.Is(err, domain.ErrIncompleteRequest):
		return &Response{Available: false, Reason: ReasonIncomplete}
	case errors.Is(err, domain.ErrMissingTimeOfDay):
		return &Response{Available: false, Reason: ReasonMissingTimeOfDay}
	case errors.Is(err, domain.ErrFullDayConflict):
		return &Response{Available: false, Reason: ReasonFullDayConflict}
	case errors.Is(err, domain.ErrTimeSlotTaken):
		resp := &Response{Available: false, Reason: ReasonSlotTaken}
		if slot, ok := domain.ConflictingSlot(err); ok {
			s := string(slot)
			resp.Slot = &s
		}
		return resp
	default:
		return &Response{Available: false, Reason: ReasonIncomplete}
	}
}
