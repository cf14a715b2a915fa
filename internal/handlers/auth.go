package handlers

import (
	"context"
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

// AuthService is the authentication behaviour the auth routes need.
type AuthService interface {
	Register(ctx context.Context, req types.RegisterRequest) (types.PublicUser, error)
	Login(ctx context.Context, req types.LoginRequest) (types.PublicUser, error)
}

// AuthHandler provides session authentication endpoints.
type AuthHandler struct {
	auth     AuthService
	sessions SessionManager
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(auth AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// AuthRouter registers auth routes on the given /api router. limit, when
// set, throttles the credential endpoints.
func AuthRouter(r chi.Router, auth AuthService, sessions SessionManager, limit func(http.Handler) http.Handler) {
	handler := NewAuthHandler(auth, sessions)

	r.Group(func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
	})
	r.Post("/logout", handler.Logout)
	r.Get("/auth/user", handler.CurrentUser)
}

// Register creates an account and logs it in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	if err := h.sessions.Establish(w, r, user.ID); err != nil {
		logger.Log.Errorw("failed to establish session", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.auth.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	if err := h.sessions.Establish(w, r, user.ID); err != nil {
		logger.Log.Errorw("failed to establish session", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout destroys the current session. Calling it without a session is
// not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		logger.Log.Errorw("failed to destroy session", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// CurrentUser returns the public projection of the logged-in user.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}
