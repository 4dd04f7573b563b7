package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingNotEditable возвращается при попытке редактировать отмененное бронирование
	ErrBookingNotEditable = errors.New("update_booking: cancelled booking cannot be edited")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("update_booking: venue not found")

	// ErrMissingTimeOfDay возвращается, когда для полудневного бронирования не указана половина дня
	ErrMissingTimeOfDay = errors.New("update_booking: time of day is required for half-day bookings")

	// ErrNoPricing возвращается, когда у площадки не настроены тарифы
	ErrNoPricing = errors.New("update_booking: venue has no pricing configured")

	// ErrFullDayConflict возвращается, когда дата уже занята бронированием на весь день
	ErrFullDayConflict = errors.New("update_booking: date is taken by a full-day booking")

	// ErrTimeSlotTaken возвращается, когда выбранный слот уже занят
	ErrTimeSlotTaken = errors.New("update_booking: time slot is already taken")

	// ErrStaleRead возвращается, когда конкурентная запись заняла слот между проверкой и обновлением
	ErrStaleRead = errors.New("update_booking: slot was taken by a concurrent booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
