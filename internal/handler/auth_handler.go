package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubsite/internal/auth"
	apperrors "clubsite/internal/errors"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	sessions *auth.SessionManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// StatusResponse reports the session state of the presented token.
type StatusResponse struct {
	Success         bool `json:"success"`
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "password is required",
			Code:    "VALIDATION_ERROR",
		})
	}

	token, err := h.sessions.Login(req.Password)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token})
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Idempotent: an absent or already-invalid token is still a successful logout.
	if token := auth.BearerToken(c.Request()); token != "" {
		h.sessions.Logout(token)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "logged out",
	})
}

// Status godoc
// @Summary Admin session status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	// RequireSession already rejected invalid tokens.
	return c.JSON(http.StatusOK, StatusResponse{Success: true, IsAuthenticated: true})
}
