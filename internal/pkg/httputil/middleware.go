package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"github.com/bkuzmin/participant-registry/internal/identity"
	"github.com/bkuzmin/participant-registry/internal/pkg/ctxlog"
)

// CORSMiddleware creates CORS middleware that handles preflight requests
// and adds appropriate CORS headers to responses.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if origin is allowed
			if originsSet[origin] || originsSet["*"] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type contextKey string

// Context keys for storing the authenticated admin.
const (
	AdminIDKey       contextKey = "admin_id"
	AdminUsernameKey contextKey = "admin_username"
)

// CredentialAuthenticator checks a transport-level authorization value
// and returns the matching admin.
type CredentialAuthenticator interface {
	Authenticate(ctx context.Context, authorization string) (*domain.Admin, error)
}

// BasicAuthMiddleware authenticates every request through the
// credential gate and attaches the admin identity to the context.
// Auth rejections map to 401; a gate infrastructure failure maps to
// 500 and is never reported as invalid credentials.
func BasicAuthMiddleware(auth CredentialAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				switch {
				case errors.Is(err, identity.ErrAuthScheme),
					errors.Is(err, identity.ErrAuthFormat),
					errors.Is(err, identity.ErrInvalidCredentials):
					w.Header().Set("WWW-Authenticate", `Basic realm="participant-registry"`)
					Error(w, http.StatusUnauthorized, err.Error())
				default:
					ctxlog.FromContext(r.Context()).Error("credential check failed", "error", err)
					Error(w, http.StatusInternalServerError, "authentication unavailable")
				}
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, admin.ID)
			ctx = context.WithValue(ctx, AdminUsernameKey, admin.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID extracts the authenticated admin's id from context.
func GetAdminID(ctx context.Context) string {
	if id, ok := ctx.Value(AdminIDKey).(string); ok {
		return id
	}
	return ""
}

// GetAdminUsername extracts the authenticated admin's username from context.
func GetAdminUsername(ctx context.Context) string {
	if username, ok := ctx.Value(AdminUsernameKey).(string); ok {
		return username
	}
	return ""
}
