package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EventName) == "" {
		return fmt.Errorf("%w: eventName is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Новое бронирование не создается задним числом; сегодняшняя дата допустима
	if domain.TruncateToDay(req.Date).Before(domain.TruncateToDay(now)) {
		return ErrDateInPast
	}

	if req.GuestCount < 0 {
		return fmt.Errorf("%w: guestCount must not be negative", ErrInvalidInput)
	}

	// Половина дня обязательна для полудневного бронирования и никогда
	// не подставляется по умолчанию
	if !req.IsFullDay && (req.TimeOfDay == nil || !req.TimeOfDay.IsValid()) {
		return ErrMissingTimeOfDay
	}

	// Свадебное бронирование идет без карточки клиента, но обязано нести
	// имя клиента в самой записи
	if req.EventType == domain.EventWedding && req.ClientID == nil {
		if req.ClientName == nil || strings.TrimSpace(*req.ClientName) == "" {
			return fmt.Errorf("%w: clientName is required for wedding bookings", ErrInvalidInput)
		}
	}

	return nil
}
