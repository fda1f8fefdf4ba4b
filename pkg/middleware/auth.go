package middleware

import (
	"net/http"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

// loginRedirect tells the shell where to navigate when no login is stored.
var loginRedirect = map[string]string{"redirect": "/login"}

// RequireSession lets a request through only when an access token is stored.
func RequireSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok, err := sessionRepo.Get(r.Context(), entity.SessionKeyAccessToken)
			if err != nil {
				logger.Warn("Unreadable session, asking for login",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Login required", loginRedirect)
				return
			}

			if !ok || token == "" {
				logger.Debug("No stored session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Login required", loginRedirect)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
