package update_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	venuesService "github.com/avetra/venue-booking-service/internal/service/venues"
	venueModels "github.com/avetra/venue-booking-service/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVenueData   = "некорректные данные площадки"
	msgVenueNotFound      = "площадка не найдена"
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

// Handle PUT /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req venueModels.UpdateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/%d - Invalid request body: %v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.venueService.Update(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/%d - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("PUT /venues/%d - Invalid venue data: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidVenueData)

		default:
			h.logger.Error("PUT /venues/%d - Failed to update venue: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/%d - Venue updated", venueID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
