package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"message":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// respondServiceError logs a service failure and replies with its mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err, "status", status)
	}

	respondError(w, status, message)
}

// mapServiceError maps domain errors to an HTTP status and user-facing message.
// Specific errors are checked before the general kind they wrap.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrTooManyItems):
		return http.StatusBadRequest, domain.ErrMsgReloadPage
	case errors.Is(err, domain.ErrWeaponNotFound):
		return http.StatusNotFound, domain.ErrMsgWeaponNotFound
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusNotFound, domain.ErrMsgRefreshPage
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, domain.ErrMsgUnauthorized
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflict
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
