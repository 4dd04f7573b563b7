package update_booking

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
	"github.com/avetra/venue-booking-service/pkg/types"
)

// Request модель запроса на редактирование бронирования
// Слотовые поля (Date, IsFullDay, TimeOfDay) передаются целиком:
// частичное обновление слота не поддерживается
type Request struct {
	BookingID int64

	VenueID   int64
	ClientID  *int64
	EventName string
	EventType domain.EventType
	Date      time.Time
	IsFullDay bool
	TimeOfDay *domain.TimeOfDay

	GuestCount int
	Notes      *string

	ClientName *string
	BrideName  *string
	GroomName  *string
	Phone      *string
	Address    *string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	VenueID   int64
	ClientID  *int64
	EventName string
	EventType string

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsFullDay bool
	TimeOfDay *string

	GuestCount    int
	TotalAmount   float64
	DepositAmount float64
	DepositPaid   bool
	Status        string
	Notes         *string

	ClientName *string
	BrideName  *string
	GroomName  *string
	Phone      *string
	Address    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// toResponse конвертирует доменную модель в ответ usecase
func toResponse(b *domain.Booking) *Response {
	var timeOfDay *string
	if b.TimeOfDay != nil {
		s := string(*b.TimeOfDay)
		timeOfDay = &s
	}

	return &Response{
		ID:            b.ID,
		VenueID:       b.VenueID,
		ClientID:      b.ClientID,
		EventName:     b.EventName,
		EventType:     string(b.EventType),
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		IsFullDay:     b.IsFullDay,
		TimeOfDay:     timeOfDay,
		GuestCount:    b.GuestCount,
		TotalAmount:   b.TotalAmount,
		DepositAmount: b.DepositAmount,
		DepositPaid:   b.DepositPaid,
		Status:        string(b.Status),
		Notes:         b.Notes,
		ClientName:    b.ClientName,
		BrideName:     b.BrideName,
		GroomName:     b.GroomName,
		Phone:         b.Phone,
		Address:       b.Address,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
