package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetra/venue-booking-service/internal/domain"
	bookingRepo "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
	venueRepo "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

// UseCase use case для редактирования бронирования
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case редактирования бронирования
// При проверке доступности слота собственная прежняя запись бронирования
// исключается из набора: перенос с утра на вечер того же дня не должен
// конфликтовать сам с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, venue=%d, date=%s, fullDay=%t",
		req.BookingID, req.VenueID, req.Date.Format(domain.DateFormat), req.IsFullDay)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("UpdateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	date := domain.TruncateToDay(req.Date)

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем текущее состояние бронирования
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Отмененное бронирование не редактируется
		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is %s", current.ID, current.Status)
			return ErrBookingNotEditable
		}

		// 3.3. Получаем все активные бронирования площадки на целевую дату
		// с блокировкой (FOR UPDATE)
		filter := domain.VenueBookingsFilter{
			VenueID:          &req.VenueID,
			StartDate:        &date,
			EndDate:          &date,
			IncludeCancelled: false,
		}

		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.4. Проверяем доступность слота, исключая собственную запись
		slotReq := domain.SlotRequest{
			VenueID:          req.VenueID,
			Date:             date,
			IsFullDay:        req.IsFullDay,
			TimeOfDay:        req.TimeOfDay,
			ExcludeBookingID: &req.BookingID,
		}
		if err := domain.ValidateSlotRequest(slotReq, bookings); err != nil {
			uc.logger.Warn("UpdateBooking: slot validation failed: %v", err)
			return mapConflictError(err)
		}

		// 3.5. Слотовые поля меняются - перештамповываем окно и тариф.
		// При неизменном типе слота суммы сохраняются как есть
		totalAmount := current.TotalAmount
		depositAmount := current.DepositAmount
		window, err := domain.WindowFor(req.IsFullDay, req.TimeOfDay)
		if err != nil {
			return ErrMissingTimeOfDay
		}
		if current.IsFullDay != req.IsFullDay {
			pricing, err := domain.ResolvePricing(venue, req.IsFullDay, req.TimeOfDay)
			if err != nil {
				if errors.Is(err, domain.ErrNoPricing) {
					return ErrNoPricing
				}
				return ErrMissingTimeOfDay
			}
			totalAmount = pricing.Amount
			depositAmount = pricing.DepositAmount
		}

		updated := &domain.Booking{
			ID:            current.ID,
			VenueID:       req.VenueID,
			ClientID:      req.ClientID,
			EventName:     req.EventName,
			EventType:     req.EventType,
			Date:          date,
			StartTime:     window.Start,
			EndTime:       window.End,
			IsFullDay:     req.IsFullDay,
			TimeOfDay:     req.TimeOfDay,
			GuestCount:    req.GuestCount,
			TotalAmount:   totalAmount,
			DepositAmount: depositAmount,
			DepositPaid:   current.DepositPaid,
			Status:        current.Status,
			Notes:         req.Notes,
			ClientName:    req.ClientName,
			BrideName:     req.BrideName,
			GroomName:     req.GroomName,
			Phone:         req.Phone,
			Address:       req.Address,
			CreatedAt:     current.CreatedAt,
		}

		// 3.6. Сохраняем бронирование
		saved, err := uc.bookingRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("UpdateBooking: concurrent booking took the slot: %v", err)
				return ErrStaleRead
			}
			uc.logger.Error("UpdateBooking: failed to update booking: %v", err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return toResponse(result), nil
}

// mapConflictError переводит доменные ошибки валидации слота в ошибки usecase
func mapConflictError(err error) error {
	switch {
	case errors.Is(err, domain.ErrFullDayConflict):
		return ErrFullDayConflict
	case errors.Is(err, domain.ErrTimeSlotTaken):
		return ErrTimeSlotTaken
	case errors.Is(err, domain.ErrMissingTimeOfDay):
		return ErrMissingTimeOfDay
	case errors.Is(err, domain.ErrIncompleteRequest):
		return fmt.Errorf("%w: venue and date are required", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
