package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	h "explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// bearerToken extracts the token from "Authorization: Bearer <token>". On
// failure it returns the message for the 401 body.
func bearerToken(r *http.Request) (token, problem string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", "invalid authorization format"
	}
	if token = strings.TrimSpace(auth[len(prefix):]); token == "" {
		return "", "missing token"
	}
	return token, ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	h.WriteJSONError(w, http.StatusUnauthorized, msg)
}

// RequireRole returns a wrapper that validates the Bearer token and checks that
// it carries role. A missing or invalid token yields 401, a valid token without
// the role yields 403. Accepted non-GET requests are logged with the token subject.
func RequireRole(verifier domain.TokenVerifier, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r)
			if problem != "" {
				unauthorized(w, problem)
				return
			}
			p, err := verifier.Verify(token)
			if err != nil {
				logger.InfoContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				unauthorized(w, "invalid or expired token")
				return
			}
			if !p.HasRole(role) {
				logger.InfoContext(r.Context(), "role missing", "path", r.URL.Path, "subject", p.Subject, "role", role)
				h.WriteJSONError(w, http.StatusForbidden, "role "+role+" required")
				return
			}
			if r.Method != http.MethodGet {
				logger.InfoContext(r.Context(), "admin mutation", "subject", p.Subject, "method", r.Method, "path", r.URL.Path)
			}
			next.ServeHTTP(w, r)
		})
	}
}
