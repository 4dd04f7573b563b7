package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetra/venue-booking-service/internal/domain"
	bookingRepo "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
	venueRepo "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
)

// UseCase use case для создания бронирования площадки
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности слота и вставка выполняются атомарно, а частичные
// уникальные индексы в БД остаются последней линией защиты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: venue=%d, date=%s, fullDay=%t",
		req.VenueID, req.Date.Format(domain.DateFormat), req.IsFullDay)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Площадка на обслуживании не принимает новые бронирования
	if !venue.IsBookable() {
		uc.logger.Warn("CreateBooking: venue id=%d is in state %s", venue.ID, venue.State)
		return nil, ErrVenueUnavailable
	}

	// 4. Разрешаем тариф и каноническое окно слота
	pricing, err := domain.ResolvePricing(venue, req.IsFullDay, req.TimeOfDay)
	if err != nil {
		if errors.Is(err, domain.ErrNoPricing) {
			uc.logger.Warn("CreateBooking: venue id=%d has no pricing configured", venue.ID)
			return nil, ErrNoPricing
		}
		uc.logger.Warn("CreateBooking: pricing resolution failed: %v", err)
		return nil, ErrMissingTimeOfDay
	}

	date := domain.TruncateToDay(req.Date)

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем все активные бронирования площадки на эту дату
		// с блокировкой (FOR UPDATE)
		filter := domain.VenueBookingsFilter{
			VenueID:          &req.VenueID,
			StartDate:        &date,
			EndDate:          &date,
			IncludeCancelled: false,
		}

		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность слота
		slotReq := domain.SlotRequest{
			VenueID:   req.VenueID,
			Date:      date,
			IsFullDay: req.IsFullDay,
			TimeOfDay: req.TimeOfDay,
		}
		if err := domain.ValidateSlotRequest(slotReq, bookings); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return mapConflictError(err)
		}

		// 5.3. Создаем бронирование со штампом тарифа и окна слота
		booking := &domain.Booking{
			VenueID:       req.VenueID,
			ClientID:      req.ClientID,
			EventName:     req.EventName,
			EventType:     req.EventType,
			Date:          date,
			StartTime:     pricing.Window.Start,
			EndTime:       pricing.Window.End,
			IsFullDay:     req.IsFullDay,
			TimeOfDay:     req.TimeOfDay,
			GuestCount:    req.GuestCount,
			TotalAmount:   pricing.Amount,
			DepositAmount: pricing.DepositAmount,
			DepositPaid:   false,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
			ClientName:    req.ClientName,
			BrideName:     req.BrideName,
			GroomName:     req.GroomName,
			Phone:         req.Phone,
			Address:       req.Address,
		}

		// 5.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная запись успела занять слот: индекс сработал после
			// успешной проверки. Не повторяем автоматически - клиент должен
			// увидеть конфликт и перечитать доступность
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: concurrent booking took the slot: %v", err)
				return ErrStaleRead
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

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
