package login

import (
	"context"

	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

type StaffService interface {
	Login(ctx context.Context, req *staffModels.LoginRequest) (*staffModels.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
