package create_staff

import (
	"context"

	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

type StaffService interface {
	Create(ctx context.Context, req *staffModels.CreateStaffRequest) (*staffModels.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
