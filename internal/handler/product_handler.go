package handler

import (
	"net/http"

	"boutik/internal/model"
	"boutik/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue and gallery HTTP requests.
type ProductHandler struct {
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Categories())
}

// Slots handles GET /api/slots requests: the fixed-size department gallery,
// optionally filtered by a case-insensitive name substring.
func (h *ProductHandler) Slots(w http.ResponseWriter, r *http.Request) {
	category := model.Category(r.URL.Query().Get("category"))
	if !category.Valid() {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidCategory,
			"category query parameter must name a department", h.logger)
		return
	}

	slots := h.catalog.Project(category, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, slots)
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List())
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests. When the session is not
// admin the catalogue is untouched and the response carries no product;
// the gate fails closed and quiet.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft model.ProductDraft
	if !decodeJSON(w, r, &draft, h.logger) {
		return
	}

	product, err := h.catalog.Create(r.Context(), sessionToken(r), draft)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if product == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var draft model.ProductDraft
	if !decodeJSON(w, r, &draft, h.logger) {
		return
	}

	product, err := h.catalog.Update(r.Context(), sessionToken(r), r.PathValue("id"), draft)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if product == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests. The confirm query
// parameter is the boolean confirmation gate; without it the delete is
// dropped.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"

	err := h.catalog.Delete(r.Context(), sessionToken(r), r.PathValue("id"), confirmed)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
