package update_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	clientsService "github.com/avetra/venue-booking-service/internal/service/clients"
	clientModels "github.com/avetra/venue-booking-service/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClientData  = "некорректные данные клиента"
	msgClientNotFound     = "клиент не найден"
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

// Handle PUT /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req clientModels.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/%d - Invalid request body: %v", clientID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.clientService.Update(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clientsService.ErrClientNotFound):
			h.logger.Warn("PUT /clients/%d - Client not found", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clientsService.ErrInvalidInput):
			h.logger.Warn("PUT /clients/%d - Invalid client data: %v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidClientData)

		default:
			h.logger.Error("PUT /clients/%d - Failed to update client: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/%d - Client updated", clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
