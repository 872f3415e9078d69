// Package session implements the storefront's operator gate. A session is an
// opaque token; authenticating with the shared PIN marks it as admin.
//
// This gate is a UX convenience, not a security boundary: the PIN is a
// single shared secret compared in-process, with no hashing, lockout or
// expiry. Nothing that must stay private may rely on it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultErrorTTL is how long a failed PIN attempt stays visible on the
// session before the transient flag clears itself.
const defaultErrorTTL = 2 * time.Second

type state struct {
	admin      bool
	authFailed bool
	clearTimer *time.Timer
}

// Manager issues session tokens and tracks the admin flag per session.
// Sessions live in memory only; a restart resets them all.
type Manager struct {
	pin      string
	errorTTL time.Duration
	logger   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*state
}

// NewManager creates a session manager gated by the given PIN.
func NewManager(pin string, logger zerolog.Logger) *Manager {
	return NewManagerWithErrorTTL(pin, defaultErrorTTL, logger)
}

// NewManagerWithErrorTTL creates a session manager with a custom transient
// error lifetime.
func NewManagerWithErrorTTL(pin string, errorTTL time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		pin:      pin,
		errorTTL: errorTTL,
		logger:   logger.With().Str("component", "session").Logger(),
		sessions: make(map[string]*state),
	}
}

// Create issues a fresh non-admin session token.
func (m *Manager) Create() string {
	token := uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = &state{}
	m.mu.Unlock()

	m.logger.Debug().Str("token", token[:8]).Msg("session created")

	return token
}

// Exists reports whether token identifies a live session.
func (m *Manager) Exists(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	return ok
}

// Authenticate compares pin against the shared secret. On a match the
// session becomes admin and any transient error is cleared. On a mismatch
// the session gains a transient error flag that clears itself after the
// configured TTL, and the admin flag is left unchanged. Unknown tokens
// always fail.
func (m *Manager) Authenticate(token, pin string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return false
	}

	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}

	if pin == m.pin {
		s.admin = true
		s.authFailed = false
		m.logger.Info().Str("token", token[:8]).Msg("admin authenticated")
		return true
	}

	s.authFailed = true
	s.clearTimer = time.AfterFunc(m.errorTTL, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if cur, ok := m.sessions[token]; ok {
			cur.authFailed = false
			cur.clearTimer = nil
		}
	})

	m.logger.Warn().Str("token", token[:8]).Msg("admin authentication failed")

	return false
}

// Logout drops the admin flag from the session.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[token]; ok && s.admin {
		s.admin = false
		m.logger.Info().Str("token", token[:8]).Msg("admin logged out")
	}
}

// IsAdmin reports whether token identifies an authenticated admin session.
// Unknown tokens are never admin.
func (m *Manager) IsAdmin(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	return ok && s.admin
}

// AuthFailed reports whether the session currently carries the transient
// failed-PIN flag.
func (m *Manager) AuthFailed(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	return ok && s.authFailed
}
