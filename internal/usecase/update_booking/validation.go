package update_booking

import (
	"fmt"
	"strings"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EventName) == "" {
		return fmt.Errorf("%w: eventName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GuestCount < 0 {
		return fmt.Errorf("%w: guestCount must not be negative", ErrInvalidInput)
	}

	// Половина дня обязательна для полудневного бронирования и никогда
	// не подставляется по умолчанию
	if !req.IsFullDay && (req.TimeOfDay == nil || !req.TimeOfDay.IsValid()) {
		return ErrMissingTimeOfDay
	}

	if req.EventType == domain.EventWedding && req.ClientID == nil {
		if req.ClientName == nil || strings.TrimSpace(*req.ClientName) == "" {
			return fmt.Errorf("%w: clientName is required for wedding bookings", ErrInvalidInput)
		}
	}

	return nil
}
