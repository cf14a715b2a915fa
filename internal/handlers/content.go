package handlers

import (
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

// ContentHandler serves editable website copy and site settings.
type ContentHandler struct {
	content *services.ContentService
}

func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// ContentRouter registers content block routes.
func ContentRouter(r chi.Router, content *services.ContentService, gate *Gate) {
	handler := NewContentHandler(content)

	r.Get("/", handler.ListBlocks)
	r.With(gate.RequireAuth).Put("/", handler.SaveBlock)
	r.With(gate.RequireAuth).Delete("/{id}", handler.DeleteBlock)
}

// SettingsRouter registers site setting routes. Only admins may change them.
func SettingsRouter(r chi.Router, content *services.ContentService, gate *Gate) {
	handler := NewContentHandler(content)

	r.Get("/", handler.Settings)
	r.With(gate.RequireAdmin).Put("/{key}", handler.PutSetting)
}

func (h *ContentHandler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.content.ListBlocks(r.Context(), r.URL.Query().Get("section"))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

func (h *ContentHandler) SaveBlock(w http.ResponseWriter, r *http.Request) {
	block := types.ContentBlock{Type: "text"}
	if !decodeJSON(w, r, &block) {
		return
	}
	saved, err := h.content.SaveBlock(r.Context(), userIDFromContext(r.Context()), block)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *ContentHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.content.DeleteBlock(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Content block not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.content.Settings(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type settingRequest struct {
	Value string `json:"value" validate:"max=10000"`
}

func (h *ContentHandler) PutSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" || len(key) > 100 {
		writeError(w, http.StatusBadRequest, "invalid key")
		return
	}
	var req settingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	setting, err := h.content.PutSetting(r.Context(), key, req.Value)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, setting)
}
