package list_clients

import (
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
)

type Handler struct {
	clientService ClientService
	logger        Logger
}

func NewHandler(clientService ClientService, logger Logger) *Handler {
	return &Handler{
		clientService: clientService,
		logger:        logger,
	}
}

// Handle GET /api/v1/clients?name=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var nameQuery *string
	if name := r.URL.Query().Get("name"); name != "" {
		nameQuery = &name
	}

	result, err := h.clientService.List(r.Context(), nameQuery)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
