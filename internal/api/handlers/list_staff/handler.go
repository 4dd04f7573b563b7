package list_staff

import (
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
)

type Handler struct {
	staffService StaffService
	logger       Logger
}

func NewHandler(staffService StaffService, logger Logger) *Handler {
	return &Handler{
		staffService: staffService,
		logger:       logger,
	}
}

// Handle GET /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
