package handlers

import (
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

type TestimonialHandler struct {
	testimonials *services.TestimonialService
}

func NewTestimonialHandler(testimonials *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// TestimonialRouter registers testimonial routes. Unapproved testimonials
// are only listed for authenticated users.
func TestimonialRouter(r chi.Router, testimonials *services.TestimonialService, gate *Gate) {
	handler := NewTestimonialHandler(testimonials)

	r.Get("/", handler.List)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.testimonials.List(r.Context(), isAuthenticated(r))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t types.Testimonial
	if !decodeJSON(w, r, &t) {
		return
	}
	created, err := h.testimonials.Create(r.Context(), t)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var t types.Testimonial
	if !decodeJSON(w, r, &t) {
		return
	}
	updated, err := h.testimonials.Update(r.Context(), id, t)
	if err != nil {
		writeServiceError(w, r, err, "Testimonial not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.testimonials.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Testimonial not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
