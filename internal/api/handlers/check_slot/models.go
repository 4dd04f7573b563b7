package check_slot

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
	checkSlot "github.com/avetra/venue-booking-service/internal/usecase/check_slot"
)

// CheckSlotRequest HTTP request model
// Поля необязательны: неполная форма дает решение "incomplete", а не ошибку
type CheckSlotRequest struct {
	VenueID          int64   `json:"venueId"`
	Date             string  `json:"date,omitempty"` // "2025-10-15"
	IsFullDay        bool    `json:"isFullDay"`
	TimeOfDay        *string `json:"timeOfDay,omitempty"` // "morning" | "evening"
	ExcludeBookingID *int64  `json:"excludeBookingId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckSlotRequest) ToUseCaseRequest() (*checkSlot.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var timeOfDay *domain.TimeOfDay
	if r.TimeOfDay != nil {
		tod := domain.TimeOfDay(*r.TimeOfDay)
		timeOfDay = &tod
	}

	return &checkSlot.Request{
		VenueID:          r.VenueID,
		Date:             date,
		IsFullDay:        r.IsFullDay,
		TimeOfDay:        timeOfDay,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}
