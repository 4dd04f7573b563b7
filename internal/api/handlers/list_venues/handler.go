package list_venues

import (
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.venueService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
