package handler

import (
	"net/http"

	"boutik/internal/model"
	"boutik/internal/service"
	"boutik/internal/session"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests. Carts are keyed by session token.
type CartHandler struct {
	cart     service.CartService
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart service.CartService, sessions *session.Manager, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cart:     cart,
		sessions: sessions,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// cartView is the response shape for every cart endpoint: the lines plus
// the derived total, recomputed on each request.
type cartView struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

// requireSession resolves and validates the caller's session token.
func (h *CartHandler) requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := sessionToken(r)
	if !h.sessions.Exists(token) {
		writeDomainError(w, model.ErrSessionNotFound, h.logger)
		return "", false
	}
	return token, true
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	items := h.cart.Items(token)
	writeJSON(w, http.StatusOK, cartView{Items: items, Total: model.CartTotal(items)})
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"productId"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	items, err := h.cart.Add(token, req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cartView{Items: items, Total: model.CartTotal(items)})
}

// UpdateItem handles PATCH /api/cart/items/{id} requests: quantity changes.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	items := h.cart.SetQuantity(token, r.PathValue("id"), req.Quantity)
	writeJSON(w, http.StatusOK, cartView{Items: items, Total: model.CartTotal(items)})
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	items := h.cart.Remove(token, r.PathValue("id"))
	writeJSON(w, http.StatusOK, cartView{Items: items, Total: model.CartTotal(items)})
}
