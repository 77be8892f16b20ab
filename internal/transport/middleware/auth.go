package middleware

import (
	"net/http"
	"strings"

	"github.com/openjournal/journal-backend/pkg/ctxutil"
)

// UserIDHeader carries the caller identity when the trusted-header fallback
// is enabled. Only meaningful behind a gateway that strips it from external
// traffic.
const UserIDHeader = "X-User-Id"

type tokenVerifier interface {
	VerifyToken(tokenString string) (string, error)
}

// Identity returns middleware that resolves the caller's user id and stores
// it in the request context. Resolution order: a valid bearer token wins,
// then the X-User-Id header when allowHeader is set. Requests without a
// resolvable identity proceed anonymously; RequireUser rejects them at the
// route level.
func Identity(verifier tokenVerifier, allowHeader bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				if userID, err := verifier.VerifyToken(token); err == nil {
					next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
					return
				}
				// Invalid tokens fall through to the header fallback
				// rather than failing the request here.
			}
			if allowHeader {
				if userID := strings.TrimSpace(r.Header.Get(UserIDHeader)); userID != "" {
					next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser returns middleware that rejects requests without a resolved
// user identity.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
