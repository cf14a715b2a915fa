package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/internal/handlers"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGate(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser("admin-1", types.RoleAdmin, true)
	user := f.addUser("user-1", types.RoleUser, true)

	f.userRepo.EXPECT().List(gomock.Any()).Return([]types.User{
		{ID: "admin-1", Username: "admin-1", Role: types.RoleAdmin, PasswordHash: "secret-hash"},
	}, nil).Times(1)

	anonymous := f.do(httptest.NewRequest(http.MethodGet, "/api/users", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	forbidden := f.do(httptest.NewRequest(http.MethodGet, "/api/users", nil), user)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	ok := f.do(httptest.NewRequest(http.MethodGet, "/api/users", nil), admin)
	require.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"username":"admin-1"`)
	assert.NotContains(t, ok.Body.String(), "secret-hash")
}

func TestAdminGate_SelfLockout(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser("admin-1", types.RoleAdmin, true)

	rec := f.do(jsonRequest(t, http.MethodPut, "/api/users/admin-1", map[string]any{"role": "user"}), admin)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminGate_RejectsUnknownRole(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser("admin-1", types.RoleAdmin, true)

	rec := f.do(jsonRequest(t, http.MethodPut, "/api/users/user-2", map[string]any{"role": "owner"}), admin)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Errors, "role")
}

func TestLoadUser_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := handlers.NewMockSessionManager(ctrl)
	authn := handlers.NewMockAuthenticator(ctrl)
	sessions.EXPECT().UserID(gomock.Any()).Return("u-1", nil)
	authn.EXPECT().Authenticate(gomock.Any(), "u-1").Return(types.User{}, errors.New("db down"))

	called := false
	handler := handlers.NewGate(sessions, authn).LoadUser(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_DoesNotRunHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := handlers.NewGate(handlers.NewMockSessionManager(ctrl), handlers.NewMockAuthenticator(ctrl))

	called := false
	handler := gate.RequireAdmin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRateLimiter(t *testing.T) {
	limiter := handlers.NewRateLimiter(1, 2, time.Minute)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = ip + ":4321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2"))
}
