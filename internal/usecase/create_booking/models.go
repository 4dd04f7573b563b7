package create_booking

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
	"github.com/avetra/venue-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	VenueID   int64             // ID площадки
	ClientID  *int64            // ID клиента (опционально, свадьбы идут без карточки клиента)
	EventName string            // Название мероприятия
	EventType domain.EventType  // Тип мероприятия
	Date      time.Time         // Дата мероприятия (без времени)
	IsFullDay bool              // Бронирование на весь день
	TimeOfDay *domain.TimeOfDay // Половина дня (обязательно при IsFullDay = false)

	GuestCount int     // Количество гостей
	Notes      *string // Дополнительные заметки (опционально)

	// Данные свадебного бронирования (вместо карточки клиента)
	ClientName *string
	BrideName  *string
	GroomName  *string
	Phone      *string
	Address    *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	VenueID   int64
	ClientID  *int64
	EventName string
	EventType string

	Date      time.Time        // Дата мероприятия
	StartTime types.TimeString // Время начала (из канонического окна слота)
	EndTime   types.TimeString // Время окончания
	IsFullDay bool
	TimeOfDay *string

	GuestCount    int
	TotalAmount   float64 // Стоимость, зафиксированная тарифом площадки
	DepositAmount float64 // Депозит, зафиксированный тарифом площадки
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
