package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/pkg/ctxutil"
)

// RequestIDHeader is the header used to propagate request identifiers.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that ensures every request carries a request
// id. An incoming X-Request-Id header is reused, otherwise a new UUID is
// generated. The id is stored in the context and echoed in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
