package create_client

import (
	"errors"
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	clientsService "github.com/avetra/venue-booking-service/internal/service/clients"
	clientModels "github.com/avetra/venue-booking-service/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClientData  = "некорректные данные клиента"
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

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req clientModels.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clientsService.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid client data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClientData)

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
