package handler

import (
	"net/http"

	"boutik/internal/service"

	"github.com/rs/zerolog"
)

// CommentHandler handles per-product comment HTTP requests.
type CommentHandler struct {
	comments service.CommentService
	logger   zerolog.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(comments service.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		logger:   logger.With().Str("handler", "comment").Logger(),
	}
}

// GetAll handles GET /api/products/{id}/comments requests, newest first.
func (h *CommentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.comments.List(r.PathValue("id")))
}

// Create handles POST /api/products/{id}/comments requests.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		UserName string `json:"userName"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	comment, err := h.comments.Add(r.Context(), r.PathValue("id"), req.Text, req.UserName)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// Delete handles DELETE /api/products/{id}/comments/{commentId} requests.
// Non-admin sessions get a quiet 204 with the thread untouched.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.comments.Delete(r.Context(), sessionToken(r), r.PathValue("id"), r.PathValue("commentId"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
