package handlers

import (
	"net/http"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
)

// ProductHandler provides HTTP handlers for the product catalogue.
type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductRouter registers product routes on the given router.
func ProductRouter(r chi.Router, products *services.ProductService, gate *Gate) {
	handler := NewProductHandler(products)

	r.Get("/", handler.List)
	r.Get("/{slug}", handler.Get)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.products.List(r.Context(), isAuthenticated(r), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetBySlug(r.Context(), chi.URLParam(r, "slug"), isAuthenticated(r))
	if err != nil {
		writeServiceError(w, r, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Products are active unless the body says otherwise.
	product := types.Product{Active: true}
	if !decodeJSON(w, r, &product) {
		return
	}

	created, err := h.products.Create(r.Context(), product)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	product := types.Product{Active: true}
	if !decodeJSON(w, r, &product) {
		return
	}

	updated, err := h.products.Update(r.Context(), id, product)
	if err != nil {
		writeServiceError(w, r, err, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.products.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
