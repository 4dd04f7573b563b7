package create_booking

import (
	"errors"
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	createBooking "github.com/avetra/venue-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound      = "площадка не найдена"
	msgVenueUnavailable   = "площадка не принимает бронирования"
	msgMissingTimeOfDay   = "для полудневного бронирования укажите половину дня"
	msgNoPricing          = "у площадки не настроены тарифы"
	msgFullDayConflict    = "дата уже занята целиком"
	msgTimeSlotTaken      = "выбранный слот уже занят"
	msgStaleRead          = "слот только что заняли, обновите доступность и повторите"
	msgDateInPast         = "дата бронирования уже прошла"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrVenueUnavailable):
			h.logger.Warn("POST /bookings - Venue unavailable: venue_id=%d", req.VenueID)
			handlers.RespondError(w, http.StatusConflict, msgVenueUnavailable)

		case errors.Is(err, createBooking.ErrMissingTimeOfDay):
			h.logger.Warn("POST /bookings - Missing time of day: venue_id=%d", req.VenueID)
			handlers.RespondBadRequest(w, msgMissingTimeOfDay)

		case errors.Is(err, createBooking.ErrNoPricing):
			h.logger.Warn("POST /bookings - No pricing: venue_id=%d", req.VenueID)
			handlers.RespondBadRequest(w, msgNoPricing)

		case errors.Is(err, createBooking.ErrFullDayConflict):
			h.logger.Warn("POST /bookings - Full day conflict: venue_id=%d, date=%s", req.VenueID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgFullDayConflict)

		case errors.Is(err, createBooking.ErrTimeSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: venue_id=%d, date=%s", req.VenueID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgTimeSlotTaken)

		case errors.Is(err, createBooking.ErrStaleRead):
			h.logger.Warn("POST /bookings - Stale read: venue_id=%d, date=%s", req.VenueID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgStaleRead)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in the past: venue_id=%d, date=%s", req.VenueID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, venue_id=%d", result.ID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
