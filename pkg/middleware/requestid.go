package middleware

import (
	"net/http"

	"room-booking/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with a correlation id. A UUID sent by the
// caller is kept; anything else is replaced. The id is echoed back and
// forwarded on remote API calls.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !utils.IsValidRequestID(id) {
				id = utils.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestIDContext(r.Context(), id)))
		})
	}
}
