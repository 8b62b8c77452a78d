package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"too many items", domain.ErrTooManyItems, http.StatusBadRequest, domain.ErrMsgReloadPage},
		{"weapon missing", fmt.Errorf("weapon w1: %w", domain.ErrWeaponNotFound), http.StatusNotFound, domain.ErrMsgWeaponNotFound},
		{"item not owned", fmt.Errorf("item i1: %w", domain.ErrItemNotOwned), http.StatusNotFound, domain.ErrMsgRefreshPage},
		{"item unknown", fmt.Errorf("item i1: %w", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFound},
		{"not owner", fmt.Errorf("weapon w1: %w", domain.ErrUnauthorized), http.StatusUnauthorized, domain.ErrMsgUnauthorized},
		{"generic bad request", domain.ErrBadRequest, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"generic not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgResourceNotFound},
		{"conflict", fmt.Errorf("consume: %w", domain.ErrConflict), http.StatusConflict, ErrMsgConflict},
		{"configuration", domain.ErrConfiguration, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	respondError(w, http.StatusConflict, "busy")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"status":409,"message":"busy"}`, w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}
