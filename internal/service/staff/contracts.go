package staff

import (
	"context"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников и ролей
type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffUser, error)
	List(ctx context.Context) ([]*domain.StaffUser, error)
	Create(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error)
	GetRoleByID(ctx context.Context, id int64) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
}

// TokenIssuer интерфейс выпуска токенов аутентификации
type TokenIssuer interface {
	Generate(staffID int64, role string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
