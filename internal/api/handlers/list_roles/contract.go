package list_roles

import (
	"context"

	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

type StaffService interface {
	ListRoles(ctx context.Context) (*staffModels.RoleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
