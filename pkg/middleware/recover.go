package middleware

import (
	"net/http"

	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic into a 500 envelope and logs it with the request id.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					requestID, _ := utils.GetRequestIDFromContext(r.Context())
					logger.Error("PANIC recovered",
						zap.String("request_id", requestID),
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					utils.ResponseJSON(w, http.StatusInternalServerError, false, "Internal server error",
						map[string]string{"request_id": requestID}, nil)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
