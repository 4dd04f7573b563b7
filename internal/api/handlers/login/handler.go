package login

import (
	"errors"
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	staffService "github.com/avetra/venue-booking-service/internal/service/staff"
	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
	msgMissingCredentials = "email и пароль обязательны"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req staffModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.staffService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, staffService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		default:
			h.logger.Error("POST /auth/login - Login failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Staff id=%d logged in", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
