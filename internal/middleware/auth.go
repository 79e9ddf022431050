package middleware

import (
	"context"
	"errors"
	"net/http"
	"terea-store/internal/auth"
	"terea-store/internal/logger"
	"terea-store/internal/user"
	"terea-store/internal/utils"

	"go.uber.org/zap"
)

// Authenticator resolves a session token to an admin user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.AdminUser, error)
}

// RequireAdmin rejects requests without a valid admin session and stores
// the admin in the request context otherwise.
func RequireAdmin(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractAccessToken(r)

			admin, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, user.ErrUnauthorized) {
					utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				logger.FromCtx(r.Context()).Error("admin authentication failed", zap.Error(err))
				utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := utils.SetAdminContext(r.Context(), admin.ID, admin.Username)
			ctx = logger.WithFields(ctx, zap.Int64("admin_id", admin.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
