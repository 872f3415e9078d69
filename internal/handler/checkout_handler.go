package handler

import (
	"net/http"

	"boutik/internal/model"
	"boutik/internal/service"
	"boutik/internal/session"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout HTTP requests.
type CheckoutHandler struct {
	checkout service.CheckoutService
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService, sessions *session.Manager, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		sessions: sessions,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// requireSession resolves and validates the caller's session token.
func (h *CheckoutHandler) requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := sessionToken(r)
	if !h.sessions.Exists(token) {
		writeDomainError(w, model.ErrSessionNotFound, h.logger)
		return "", false
	}
	return token, true
}

// Begin handles POST /api/checkout requests: the transition from Idle to
// MethodChosen.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Method model.PaymentMethod `json:"method"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	step, err := h.checkout.Begin(token, req.Method)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, step)
}

// Get handles GET /api/checkout requests.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	step := h.checkout.Current(token)
	if step == nil {
		writeDomainError(w, model.ErrNoCheckoutInProgress, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, step)
}

// Complete handles POST /api/checkout/complete requests: the buyer reports
// having sent the money, the cart is cleared.
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if err := h.checkout.Complete(token); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Cancel handles POST /api/checkout/cancel requests.
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	h.checkout.Cancel(token)

	w.WriteHeader(http.StatusNoContent)
}
