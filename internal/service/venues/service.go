package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avetra/venue-booking-service/internal/domain"
	venueRepo "github.com/avetra/venue-booking-service/internal/infra/storage/venue"
	"github.com/avetra/venue-booking-service/internal/service/venues/models"
)

// Service сервис для работы с площадками
type Service struct {
	venueRepo   VenueRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: creating venue name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity < 0 || req.SquareFootage < 0 {
		return nil, fmt.Errorf("%w: capacity and squareFootage must not be negative", ErrInvalidInput)
	}

	state := domain.VenueAvailable
	if req.State != nil {
		parsed, err := models.ToDomainVenueState(*req.State)
		if err != nil {
			s.logger.Warn("Create: invalid state=%s", *req.State)
			return nil, fmt.Errorf("%w: invalid state", ErrInvalidInput)
		}
		state = parsed
	}

	venue := &domain.Venue{
		Name:          req.Name,
		Capacity:      req.Capacity,
		SquareFootage: req.SquareFootage,
		Location:      req.Location,
		Description:   req.Description,
		TotalAmount:   req.TotalAmount,
		DepositAmount: req.DepositAmount,
		FullDayAmount: req.FullDayAmount,
		HalfDayAmount: req.HalfDayAmount,
		State:         state,
	}

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created venue id=%d", created.ID)
	return models.FromDomainVenue(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue), nil
}

// List получает список всех площадок
func (s *Service) List(ctx context.Context) (*models.VenueListResponse, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d venues", len(venues))
	return models.FromDomainVenueList(venues), nil
}

// Update обновляет данные площадки
// Перевод в maintenance не трогает существующие бронирования,
// но блокирует создание новых
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Update: updating venue id=%d", id)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	state, err := models.ToDomainVenueState(req.State)
	if err != nil {
		s.logger.Warn("Update: invalid state=%s for venue id=%d", req.State, id)
		return nil, fmt.Errorf("%w: invalid state", ErrInvalidInput)
	}

	venue := &domain.Venue{
		ID:            id,
		Name:          req.Name,
		Capacity:      req.Capacity,
		SquareFootage: req.SquareFootage,
		Location:      req.Location,
		Description:   req.Description,
		TotalAmount:   req.TotalAmount,
		DepositAmount: req.DepositAmount,
		FullDayAmount: req.FullDayAmount,
		HalfDayAmount: req.HalfDayAmount,
		State:         state,
	}

	updated, err := s.venueRepo.Update(ctx, venue)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Update: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated venue id=%d", id)
	return models.FromDomainVenue(updated), nil
}

// Delete удаляет площадку
// Площадка с бронированиями (включая отмененные - это история) не удаляется
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting venue id=%d", id)

	filter := domain.VenueBookingsFilter{
		VenueID:          &id,
		IncludeCancelled: true,
	}
	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Delete: failed to check bookings for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to check bookings: %v", ErrInternal, err)
	}
	if len(bookings) > 0 {
		s.logger.Warn("Delete: venue id=%d has %d bookings", id, len(bookings))
		return ErrVenueHasBookings
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Delete: venue id=%d not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted venue id=%d", id)
	return nil
}
