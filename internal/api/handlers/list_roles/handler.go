package list_roles

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

// Handle GET /api/v1/roles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.ListRoles(r.Context())
	if err != nil {
		h.logger.Error("GET /roles - Failed to list roles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
