package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrVenueUnavailable возвращается, когда площадка закрыта на обслуживание
	ErrVenueUnavailable = errors.New("create_booking: venue is not accepting bookings")

	// ErrDateInPast возвращается при попытке создать бронирование на прошедшую дату
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrMissingTimeOfDay возвращается, когда для полудневного бронирования не указана половина дня
	ErrMissingTimeOfDay = errors.New("create_booking: time of day is required for half-day bookings")

	// ErrNoPricing возвращается, когда у площадки не настроены тарифы
	ErrNoPricing = errors.New("create_booking: venue has no pricing configured")

	// ErrFullDayConflict возвращается, когда дата уже занята бронированием на весь день
	ErrFullDayConflict = errors.New("create_booking: date is taken by a full-day booking")

	// ErrTimeSlotTaken возвращается, когда выбранный слот уже занят
	ErrTimeSlotTaken = errors.New("create_booking: time slot is already taken")

	// ErrStaleRead возвращается, когда конкурентная запись заняла слот между проверкой и вставкой
	// Клиент должен перечитать доступность и повторить запрос вручную
	ErrStaleRead = errors.New("create_booking: slot was taken by a concurrent booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
