package update_client

import (
	"context"

	clientModels "github.com/avetra/venue-booking-service/internal/service/clients/models"
)

type ClientService interface {
	Update(ctx context.Context, id int64, req *clientModels.ClientRequest) (*clientModels.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
