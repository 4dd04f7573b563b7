package record_deposit

import (
	"context"

	bookingModels "github.com/avetra/venue-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	RecordDeposit(ctx context.Context, bookingID int64, req *bookingModels.RecordDepositRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
