package middleware

import (
	"net/http"

	"callprep/internal/httputil"

	"github.com/google/uuid"
)

// RequestID assigns an ID to every request and echoes it back in the
// X-Request-ID response header. An ID supplied by the caller is kept so
// the frontend can correlate a failed action with server logs.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, httputil.WithRequestID(r, id))
		})
	}
}
