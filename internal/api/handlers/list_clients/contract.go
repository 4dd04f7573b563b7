package list_clients

import (
	"context"

	clientModels "github.com/avetra/venue-booking-service/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, nameQuery *string) (*clientModels.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
