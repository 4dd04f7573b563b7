package create_booking

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
	createBooking "github.com/avetra/venue-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID   int64   `json:"venueId"`
	ClientID  *int64  `json:"clientId,omitempty"`
	EventName string  `json:"eventName"`
	EventType string  `json:"eventType"`
	Date      string  `json:"date"` // "2025-10-15"
	IsFullDay bool    `json:"isFullDay"`
	TimeOfDay *string `json:"timeOfDay,omitempty"` // "morning" | "evening"

	GuestCount int     `json:"guestCount"`
	Notes      *string `json:"notes,omitempty"`

	ClientName *string `json:"clientName,omitempty"`
	BrideName  *string `json:"brideName,omitempty"`
	GroomName  *string `json:"groomName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	VenueID   int64   `json:"venueId"`
	ClientID  *int64  `json:"clientId,omitempty"`
	EventName string  `json:"eventName"`
	EventType string  `json:"eventType"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	IsFullDay bool    `json:"isFullDay"`
	TimeOfDay *string `json:"timeOfDay,omitempty"`

	GuestCount    int     `json:"guestCount"`
	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
	DepositPaid   bool    `json:"depositPaid"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	ClientName *string `json:"clientName,omitempty"`
	BrideName  *string `json:"brideName,omitempty"`
	GroomName  *string `json:"groomName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var timeOfDay *domain.TimeOfDay
	if r.TimeOfDay != nil {
		tod := domain.TimeOfDay(*r.TimeOfDay)
		timeOfDay = &tod
	}

	return &createBooking.Request{
		VenueID:    r.VenueID,
		ClientID:   r.ClientID,
		EventName:  r.EventName,
		EventType:  domain.EventType(r.EventType),
		Date:       date,
		IsFullDay:  r.IsFullDay,
		TimeOfDay:  timeOfDay,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
		ClientName: r.ClientName,
		BrideName:  r.BrideName,
		GroomName:  r.GroomName,
		Phone:      r.Phone,
		Address:    r.Address,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		VenueID:       resp.VenueID,
		ClientID:      resp.ClientID,
		EventName:     resp.EventName,
		EventType:     resp.EventType,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		IsFullDay:     resp.IsFullDay,
		TimeOfDay:     resp.TimeOfDay,
		GuestCount:    resp.GuestCount,
		TotalAmount:   resp.TotalAmount,
		DepositAmount: resp.DepositAmount,
		DepositPaid:   resp.DepositPaid,
		Status:        resp.Status,
		Notes:         resp.Notes,
		ClientName:    resp.ClientName,
		BrideName:     resp.BrideName,
		GroomName:     resp.GroomName,
		Phone:         resp.Phone,
		Address:       resp.Address,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
