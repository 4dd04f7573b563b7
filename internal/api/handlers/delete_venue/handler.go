package delete_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	venuesService "github.com/avetra/venue-booking-service/internal/service/venues"
)

const (
	msgInvalidVenueID   = "некорректный ID площадки"
	msgVenueNotFound    = "площадка не найдена"
	msgVenueHasBookings = "нельзя удалить площадку с историей бронирований"
)

type Handler struct {
	venueService VenueService
	logger       Logger
}

func NewHandler(venueService VenueService, logger Logger) *Handler {
	return &Handler{
		venueService: venueService,
		logger:       logger,
	}
}

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	if err := h.venueService.Delete(r.Context(), venueID); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/%d - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrVenueHasBookings):
			h.logger.Warn("DELETE /venues/%d - Venue has bookings", venueID)
			handlers.RespondError(w, http.StatusConflict, msgVenueHasBookings)

		default:
			h.logger.Error("DELETE /venues/%d - Failed to delete venue: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/%d - Venue deleted", venueID)
	handlers.RespondNoContent(w)
}
