package create_venue

import (
	"errors"
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	venuesService "github.com/avetra/venue-booking-service/internal/service/venues"
	venueModels "github.com/avetra/venue-booking-service/internal/service/venues/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVenueData   = "некорректные данные площадки"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req venueModels.CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.venueService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid venue data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVenueData)

		default:
			h.logger.Error("POST /venues - Failed to create venue: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
