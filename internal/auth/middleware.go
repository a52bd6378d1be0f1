package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "clubsite/internal/errors"
)

// ContextTokenKey is the echo context key holding the authenticated token.
const ContextTokenKey = "admin_token"

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns the empty string when the header is absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireSession rejects requests whose bearer token is missing or not in the
// active set. The response does not distinguish the two cases, and nothing
// about the target resource leaks.
func RequireSession(sessions *SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c.Request())
			if !sessions.Authenticate(token) {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
					Success: false,
					Message: "authentication required",
					Code:    "UNAUTHORIZED",
				})
			}
			c.Set(ContextTokenKey, token)
			return next(c)
		}
	}
}
