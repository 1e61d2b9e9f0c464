// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/traininghub/internal/audit"
	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/model"
)

// AuthMiddleware creates a middleware that validates bearer tokens and stores the principal
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			// Check Bearer prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			// Validate token
			principal, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := auth.WithPrincipal(r.Context(), *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role is below min. It must run after AuthMiddleware.
// Denials are written to auditor.
func RequireRole(min model.Role, auditor audit.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if !principal.Role.HasAtLeast(min) {
				if auditor != nil {
					subject := model.Subject{ID: principal.UserID.String(), Role: principal.Role}
					resource := r.Method + " " + r.URL.Path
					if err := auditor.LogRoleCheck(r.Context(), subject, min, resource, false); err != nil {
						slog.ErrorContext(r.Context(), "failed to record role denial", "error", err, "resource", resource)
					}
				}
				respondWithError(w, http.StatusForbidden, deniedMessage(min))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deniedMessage(min model.Role) string {
	switch min {
	case model.RoleAdmin:
		return "Admin access required"
	case model.RoleManager:
		return "Manager access required"
	default:
		return "Access denied"
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
