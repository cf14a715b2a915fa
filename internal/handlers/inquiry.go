package handlers

import (
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

// InquiryHandler provides the public contact form and inquiry management.
type InquiryHandler struct {
	inquiries *services.InquiryService
}

func NewInquiryHandler(inquiries *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// InquiryRouter registers inquiry routes. Submitting is public, everything
// else requires a session.
func InquiryRouter(r chi.Router, inquiries *services.InquiryService, gate *Gate, limit func(http.Handler) http.Handler) {
	handler := NewInquiryHandler(inquiries)

	if limit != nil {
		r.With(limit).Post("/", handler.Submit)
	} else {
		r.Post("/", handler.Submit)
	}
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.UpdateStatus)
		r.Delete("/{id}", handler.Delete)
	})
}

func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var inquiry types.Inquiry
	if !decodeJSON(w, r, &inquiry) {
		return
	}
	created, err := h.inquiries.Submit(r.Context(), inquiry)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inquiries.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	inquiry, err := h.inquiries.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Inquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, inquiry)
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied closed"`
}

func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req inquiryStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := h.inquiries.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, r, err, "Inquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.inquiries.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Inquiry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
