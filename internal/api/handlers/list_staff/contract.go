package list_staff

import (
	"context"

	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context) (*staffModels.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
