package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"clubsite/internal/auth"
)

func TestLoginIssuesWorkingToken(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	rec, c := postJSON(e, "/api/admin/login", `{"password":"club-secret"}`)
	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, sessions.Authenticate(resp.Token))
}

func TestLoginWrongPassword(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	rec, c := postJSON(e, "/api/admin/login", `{"password":"guess"}`)
	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Empty(t, resp["token"])
}

func TestLoginMissingPassword(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	rec, c := postJSON(e, "/api/admin/login", `{}`)
	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutIsIdempotent(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	token, err := sessions.Login("club-secret")
	assert.NoError(t, err)

	logout := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		assert.NoError(t, h.Logout(c))
		return rec
	}

	rec := logout()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sessions.Authenticate(token))

	// Second logout with the same, now-invalid token still succeeds.
	rec = logout()
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutWithoutToken(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusBehindMiddleware(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	guarded := auth.RequireSession(sessions)(h.Status)

	token, err := sessions.Login("club-secret")
	assert.NoError(t, err)

	// Valid token passes.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	assert.NoError(t, guarded(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsAuthenticated)

	// Missing header is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	rec = httptest.NewRecorder()
	assert.NoError(t, guarded(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer deadbeef")
	rec = httptest.NewRecorder()
	assert.NoError(t, guarded(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Malformed header is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.Header.Set(echo.HeaderAuthorization, token)
	rec = httptest.NewRecorder()
	assert.NoError(t, guarded(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesAccess(t *testing.T) {
	e := newTestEcho()
	sessions := auth.NewSessionManager("club-secret", "")
	h := NewAuthHandler(sessions)

	guarded := auth.RequireSession(sessions)(h.Status)

	token, err := sessions.Login("club-secret")
	assert.NoError(t, err)

	sessions.Logout(token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	assert.NoError(t, guarded(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
