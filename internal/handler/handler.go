package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutik/internal/model"

	"github.com/rs/zerolog"
)

// sessionHeader carries the opaque session token on every request that has
// one.
const sessionHeader = "X-Session-Token"

// sessionToken extracts the caller's session token, empty when absent.
func sessionToken(r *http.Request) string {
	return r.Header.Get(sessionHeader)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Too late to change the response; nothing useful to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error onto an HTTP response: domain errors
// become client errors with their stable code, anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeProductNotFound:
			status = http.StatusNotFound
		case model.ErrCodeSessionNotFound:
			status = http.StatusUnauthorized
		case model.ErrCodeNoCheckoutInProgress:
			status = http.StatusConflict
		}
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// decodeJSON parses the request body into dst, reporting malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON body", logger)
		return false
	}
	return true
}
