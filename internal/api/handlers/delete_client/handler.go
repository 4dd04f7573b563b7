package delete_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	clientsService "github.com/avetra/venue-booking-service/internal/service/clients"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgClientNotFound  = "клиент не найден"
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

// Handle DELETE /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.clientService.Delete(r.Context(), clientID); err != nil {
		switch {
		case errors.Is(err, clientsService.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/%d - Client not found", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("DELETE /clients/%d - Failed to delete client: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/%d - Client deleted", clientID)
	handlers.RespondNoContent(w)
}
