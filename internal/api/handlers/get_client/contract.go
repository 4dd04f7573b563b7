package get_client

import (
	"context"

	clientModels "github.com/avetra/venue-booking-service/internal/service/clients/models"
)

type ClientService interface {
	GetByID(ctx context.Context, id int64) (*clientModels.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
