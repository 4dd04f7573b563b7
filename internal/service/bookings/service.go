package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avetra/venue-booking-service/internal/domain"
	bookingRepo "github.com/avetra/venue-booking-service/internal/infra/storage/booking"
	"github.com/avetra/venue-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Создание и редактирование идут через usecase со слотовой валидацией;
// здесь живут операции, не меняющие занятость слота, и чтение
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &ListBookingsRequest{})
// - Бронирования площадки: указать VenueID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Включая отмененные: IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование с указанием причины
// Отмена освобождает слот, но запись остается в истории и календаре
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if strings.TrimSpace(req.CancellationReason) == "" {
		s.logger.Warn("Cancel: missing cancellation reason for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellationReason is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования (pending <-> confirmed)
// Перевод в cancelled через эту операцию запрещен: отмена обязана нести
// причину и идет через Cancel
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation attempted via status update for booking id=%d", bookingID)
		return ErrCancelViaEndpoint
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Отмененное бронирование не возвращается в активные статусы:
	// его слот мог быть занят заново
	if booking.IsCancelled() {
		s.logger.Warn("UpdateStatus: booking id=%d is cancelled", bookingID)
		return ErrBookingCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// RecordDeposit фиксирует оплату депозита
// Оплаченный депозит по ожидающему бронированию автоматически подтверждает его
func (s *Service) RecordDeposit(ctx context.Context, bookingID int64, req *models.RecordDepositRequest) error {
	s.logger.Info("RecordDeposit: booking id=%d, amount=%.2f", bookingID, req.DepositAmount)

	if req.DepositAmount <= 0 {
		s.logger.Warn("RecordDeposit: non-positive amount for booking id=%d", bookingID)
		return fmt.Errorf("%w: depositAmount must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("RecordDeposit: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("RecordDeposit: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: RecordDeposit - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("RecordDeposit: booking id=%d is cancelled", bookingID)
		return ErrBookingCancelled
	}

	if err := s.bookingRepo.UpdateDeposit(ctx, bookingID, req.DepositAmount, true); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("RecordDeposit: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: RecordDeposit - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusPending {
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
			s.logger.Error("RecordDeposit: failed to confirm booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: RecordDeposit - failed to confirm booking: %v", ErrInternal, err)
		}
		s.logger.Info("RecordDeposit: booking id=%d confirmed after deposit", bookingID)
	}

	return nil
}
