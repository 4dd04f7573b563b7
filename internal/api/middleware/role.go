package middleware

import (
	"context"
	"net/http"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	staffModels "github.com/avetra/venue-booking-service/internal/service/staff/models"
)

const msgAdminOnly = "операция доступна только администраторам"

// RoleResolver интерфейс получения роли сотрудника
type RoleResolver interface {
	GetRole(ctx context.Context, staffID int64) (*staffModels.RoleResponse, error)
}

// RequireAdmin пропускает только сотрудников с админской ролью
// Роль перечитывается из БД: отзыв прав действует сразу, не дожидаясь
// истечения токена
func RequireAdmin(resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			staffID, ok := StaffIDFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			role, err := resolver.GetRole(r.Context(), staffID)
			if err != nil {
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			if !role.IsAdmin {
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
