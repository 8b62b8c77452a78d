package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
)

// ValidationErrorResponse is returned when a request body fails validation
type ValidationErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the handler should return.
//
// Example usage:
//
//	var req UpgradeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade weapon"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Status:  http.StatusBadRequest,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requirePlayer returns the authenticated player or writes a 401
func requirePlayer(w http.ResponseWriter, r *http.Request) (string, bool) {
	player, ok := PlayerFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn(LogMsgMissingPlayer, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, domain.ErrMsgUnauthorized)
		return "", false
	}
	return player, true
}
