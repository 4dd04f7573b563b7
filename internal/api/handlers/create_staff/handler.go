package create_staff

import (
	"errors"
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	staffService "github.com/avetra/venue-booking-service/internal/service/staff"
	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffData   = "некорректные данные сотрудника"
	msgEmailTaken         = "email уже используется другим сотрудником"
	msgRoleNotFound       = "указанная роль не существует"
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

// Handle POST /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req staffModels.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.staffService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrEmailTaken):
			h.logger.Warn("POST /staff - Email is already taken")
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, staffService.ErrRoleNotFound):
			h.logger.Warn("POST /staff - Role not found: role_id=%d", req.RoleID)
			handlers.RespondBadRequest(w, msgRoleNotFound)

		case errors.Is(err, staffService.ErrInvalidInput):
			h.logger.Warn("POST /staff - Invalid staff data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffData)

		default:
			h.logger.Error("POST /staff - Failed to create staff user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff - Staff user created: staff_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
