package handler

import (
	"net/http"

	"boutik/internal/model"
	"boutik/internal/session"

	"github.com/rs/zerolog"
)

// SessionHandler handles session lifecycle and the admin PIN gate.
type SessionHandler struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *session.Manager, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With().Str("handler", "session").Logger(),
	}
}

// sessionState is the view of a session returned by every session endpoint.
type sessionState struct {
	Token     string `json:"token,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
	AuthError bool   `json:"authError"`
}

// Create handles POST /api/sessions requests.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Create()
	writeJSON(w, http.StatusCreated, sessionState{Token: token})
}

// Login handles POST /api/sessions/login requests: the PIN check. A wrong
// PIN is a 200 with authError set, mirroring the transient visual error the
// storefront shows; it is not an HTTP failure.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if !h.sessions.Exists(token) {
		writeDomainError(w, model.ErrSessionNotFound, h.logger)
		return
	}

	var req struct {
		PIN string `json:"pin"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	h.sessions.Authenticate(token, req.PIN)

	writeJSON(w, http.StatusOK, sessionState{
		IsAdmin:   h.sessions.IsAdmin(token),
		AuthError: h.sessions.AuthFailed(token),
	})
}

// Logout handles POST /api/sessions/logout requests.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if !h.sessions.Exists(token) {
		writeDomainError(w, model.ErrSessionNotFound, h.logger)
		return
	}

	h.sessions.Logout(token)

	writeJSON(w, http.StatusOK, sessionState{})
}

// Me handles GET /api/sessions/me requests.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if !h.sessions.Exists(token) {
		writeDomainError(w, model.ErrSessionNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sessionState{
		IsAdmin:   h.sessions.IsAdmin(token),
		AuthError: h.sessions.AuthFailed(token),
	})
}
