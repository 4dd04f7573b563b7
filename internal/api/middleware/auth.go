package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	"github.com/avetra/venue-booking-service/pkg/authtoken"
)

const (
	msgMissingToken = "требуется заголовок Authorization с Bearer-токеном"
	msgInvalidToken = "недействительный или просроченный токен"
)

type contextKey string

const (
	staffIDKey contextKey = "staffID"
	roleKey    contextKey = "staffRole"
)

// TokenParser интерфейс проверки токена аутентификации
type TokenParser interface {
	Parse(tokenStr string) (*authtoken.Claims, error)
}

// Auth проверяет Bearer-токен и кладет ID сотрудника и роль в контекст
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey, claims.StaffID)
			ctx = context.WithValue(ctx, roleKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StaffIDFromContext извлекает ID аутентифицированного сотрудника из контекста
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}

// RoleFromContext извлекает роль аутентифицированного сотрудника из контекста
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}
