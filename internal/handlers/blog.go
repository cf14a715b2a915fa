package handlers

import (
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

// BlogHandler provides HTTP handlers for blog posts.
type BlogHandler struct {
	blog *services.BlogService
}

func NewBlogHandler(blog *services.BlogService) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// BlogRouter registers blog routes on the given router. Drafts are only
// visible to authenticated users.
func BlogRouter(r chi.Router, blog *services.BlogService, gate *Gate) {
	handler := NewBlogHandler(blog)

	r.Get("/", handler.List)
	r.Get("/{slug}", handler.Get)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.List(r.Context(), isAuthenticated(r))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.GetBySlug(r.Context(), chi.URLParam(r, "slug"), isAuthenticated(r))
	if err != nil {
		writeServiceError(w, r, err, "Blog post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var post types.BlogPost
	if !decodeJSON(w, r, &post) {
		return
	}

	created, err := h.blog.Create(r.Context(), userIDFromContext(r.Context()), post)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var post types.BlogPost
	if !decodeJSON(w, r, &post) {
		return
	}

	updated, err := h.blog.Update(r.Context(), id, post)
	if err != nil {
		writeServiceError(w, r, err, "Blog post not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.blog.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Blog post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
