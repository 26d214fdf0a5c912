package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

var (
	errNoAuthorization = errors.New("missing authorization header")
	errNotBearer       = errors.New("invalid authorization format")
	errEmptyToken      = errors.New("missing token")
)

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errNoAuthorization
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// RequireAuth authenticates the schedule editor. The verified user ID travels in
// the request context as the domain actor, so every accepted or rejected
// schedule change is attributed in the service logs. There are no roles or
// ownership checks.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "route", routeOf(r), "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(domain.WithActor(r.Context(), userID)))
		}
	}
}
