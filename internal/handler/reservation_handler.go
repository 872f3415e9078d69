package handler

import (
	"net/http"

	"boutik/internal/service"

	"github.com/rs/zerolog"
)

// ReservationHandler handles reservation HTTP requests.
type ReservationHandler struct {
	reservations service.ReservationService
	logger       zerolog.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservations service.ReservationService, logger zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		logger:       logger.With().Str("handler", "reservation").Logger(),
	}
}

// GetAll handles GET /api/reservations requests, newest first.
func (h *ReservationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reservations.List())
}

// Create handles POST /api/reservations requests.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	reservation, err := h.reservations.Reserve(r.Context(), req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, reservation)
}
