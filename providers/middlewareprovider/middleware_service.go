package middlewareprovider

import (
	"context"
	"net/http"
	"strings"

	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/utils"

	"github.com/pkg/errors"
)

type contextKey string

const (
	tokenContextKey contextKey = "token_key"
	roleContextKey  contextKey = "role_key"

	bearerPrefix = "Bearer "

	// adminMarker in a token makes its holder an admin.
	adminMarker = "admin"
)

type DefaultAuthMiddleware struct{}

func NewAuthMiddlewareService() providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{}
}

// RoleFromToken infers the role a fixture token was issued for.
func RoleFromToken(token string) models.Role {
	if strings.Contains(token, adminMarker) {
		return models.AdminRole
	}
	return models.EmployeeRole
}

func (a *DefaultAuthMiddleware) BearerAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing bearer token"), "Authentication required")
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			if token == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("empty bearer token"), "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			ctx = context.WithValue(ctx, roleContextKey, RoleFromToken(token))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, role, err := a.GetTokenAndRoleFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
				return
			}
			if !allowed[role] {
				utils.RespondError(w, http.StatusForbidden, nil, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetTokenAndRoleFromContext(r *http.Request) (string, models.Role, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok {
		return "", "", errors.New("token not found in context")
	}
	role, ok := r.Context().Value(roleContextKey).(models.Role)
	if !ok {
		return "", "", errors.New("role not found in context")
	}
	return token, role, nil
}
