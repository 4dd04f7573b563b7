package models

import (
	"errors"
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
)

var (
	// ErrInvalidState возвращается при некорректном состоянии площадки
	ErrInvalidState = errors.New("invalid venue state")
)

// Request модели

// CreateVenueRequest запрос на создание площадки
type CreateVenueRequest struct {
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	SquareFootage int     `json:"squareFootage"`
	Location      *string `json:"location,omitempty"`
	Description   *string `json:"description,omitempty"`

	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
	FullDayAmount float64 `json:"fullDayAmount"`
	HalfDayAmount float64 `json:"halfDayAmount"`

	State *string `json:"state,omitempty"` // по умолчанию available
}

// UpdateVenueRequest запрос на обновление площадки
type UpdateVenueRequest struct {
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	SquareFootage int     `json:"squareFootage"`
	Location      *string `json:"location,omitempty"`
	Description   *string `json:"description,omitempty"`

	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
	FullDayAmount float64 `json:"fullDayAmount"`
	HalfDayAmount float64 `json:"halfDayAmount"`

	State string `json:"state"`
}

// Response модели

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	SquareFootage int     `json:"squareFootage"`
	Location      *string `json:"location,omitempty"`
	Description   *string `json:"description,omitempty"`

	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
	FullDayAmount float64 `json:"fullDayAmount"`
	HalfDayAmount float64 `json:"halfDayAmount"`

	State string `json:"state"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:            v.ID,
		Name:          v.Name,
		Capacity:      v.Capacity,
		SquareFootage: v.SquareFootage,
		Location:      v.Location,
		Description:   v.Description,
		TotalAmount:   v.TotalAmount,
		DepositAmount: v.DepositAmount,
		FullDayAmount: v.FullDayAmount,
		HalfDayAmount: v.HalfDayAmount,
		State:         string(v.State),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}
	for _, v := range venues {
		if venueResp := FromDomainVenue(v); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}
	return resp
}

// ToDomainVenueState конвертирует строку в domain.VenueState с валидацией
func ToDomainVenueState(state string) (domain.VenueState, error) {
	s := domain.VenueState(state)

	if s == domain.VenueAvailable || s == domain.VenueMaintenance {
		return s, nil
	}

	return "", ErrInvalidState
}
