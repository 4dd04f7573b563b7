package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrCancelViaEndpoint возвращается при попытке отменить бронирование
	// через смену статуса: отмена идет только через отдельную операцию с причиной
	ErrCancelViaEndpoint = errors.New("cancellation requires the cancel operation with a reason")

	// ErrBookingCancelled возвращается при операции над отмененным бронированием
	ErrBookingCancelled = errors.New("booking is cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
