package handlers

import (
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

// UserHandler provides admin account management.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UserRouter registers user management routes. Every route is admin only.
func UserRouter(r chi.Router, users *services.UserService, gate *Gate) {
	handler := NewUserHandler(users)

	r.Use(gate.RequireAdmin)
	r.Get("/", handler.List)
	r.Put("/{id}", handler.Update)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	public := make([]types.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	writeJSON(w, http.StatusOK, public)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req types.UserUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.users.Update(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}
