package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	updateBooking "github.com/avetra/venue-booking-service/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingNotEditable = "отмененное бронирование нельзя редактировать"
	msgVenueNotFound      = "площадка не найдена"
	msgMissingTimeOfDay   = "для полудневного бронирования укажите половину дня"
	msgNoPricing          = "у площадки не настроены тарифы"
	msgFullDayConflict    = "дата уже занята целиком"
	msgTimeSlotTaken      = "выбранный слот уже занят"
	msgStaleRead          = "слот только что заняли, обновите доступность и повторите"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingNotEditable):
			h.logger.Warn("PUT /bookings/%d - Booking not editable", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotEditable)

		case errors.Is(err, updateBooking.ErrVenueNotFound):
			h.logger.Warn("PUT /bookings/%d - Venue not found: venue_id=%d", bookingID, req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateBooking.ErrMissingTimeOfDay):
			handlers.RespondBadRequest(w, msgMissingTimeOfDay)

		case errors.Is(err, updateBooking.ErrNoPricing):
			handlers.RespondBadRequest(w, msgNoPricing)

		case errors.Is(err, updateBooking.ErrFullDayConflict):
			h.logger.Warn("PUT /bookings/%d - Full day conflict: date=%s", bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgFullDayConflict)

		case errors.Is(err, updateBooking.ErrTimeSlotTaken):
			h.logger.Warn("PUT /bookings/%d - Slot taken: date=%s", bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgTimeSlotTaken)

		case errors.Is(err, updateBooking.ErrStaleRead):
			h.logger.Warn("PUT /bookings/%d - Stale read: date=%s", bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgStaleRead)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
