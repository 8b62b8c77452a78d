package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/UpgradeForge_Go/internal/logger"
	"github.com/osse101/UpgradeForge_Go/internal/upgrade"
)

// WeaponIDParam is the route parameter holding the weapon id
const WeaponIDParam = "id"

// UpgradeRequest is the body of an upgrade call
type UpgradeRequest struct {
	WeaponID string   `json:"id" validate:"required,uuid"`
	Items    []string `json:"items" validate:"required,dive,required,max=64"`
}

// HandleUpgrade applies the submitted items to a weapon.
// It answers true when the upgrade was applied, or the explanation string
// when the combination cannot be applied to the weapon right now.
// @Summary Upgrade weapon
// @Description Consume upgrade items and apply their combination to a weapon
// @Tags upgrade
// @Accept json
// @Produce json
// @Param request body UpgradeRequest true "Weapon id and item ids"
// @Success 200 {object} bool "true when applied, otherwise the explanation string"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Weapon or item not found"
// @Failure 409 {object} ErrorResponse "Item already consumed"
// @Failure 500 {object} ErrorResponse
// @Router /upgrade [post]
func HandleUpgrade(svc upgrade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade weapon"); err != nil {
			return
		}

		result, err := svc.Upgrade(r.Context(), player, req.WeaponID, req.Items)
		if err != nil {
			respondServiceError(w, r, "upgrade", err)
			return
		}

		log := logger.FromContext(r.Context())
		if !result.Applied {
			log.Info(LogMsgUpgradeInfeasible, "weapon_id", req.WeaponID, "recipe", result.Recipe, "reason", result.Message)
			respondJSON(w, http.StatusOK, result.Message)
			return
		}

		log.Info(LogMsgUpgradeApplied, "weapon_id", req.WeaponID, "recipe", result.Recipe, "stat_id", result.StatID)
		respondJSON(w, http.StatusOK, true)
	}
}

// HandleGetWeaponStats returns a weapon with its modifiers and total damage
// @Summary Get weapon stats
// @Description Get a weapon owned by the caller with its stat modifiers and total damage
// @Tags upgrade
// @Produce json
// @Param id path string true "Weapon id"
// @Success 200 {object} upgrade.WeaponView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /weapons/{id}/stats [get]
func HandleGetWeaponStats(svc upgrade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := requirePlayer(w, r)
		if !ok {
			return
		}

		weaponID := chi.URLParam(r, WeaponIDParam)
		if err := GetValidator().ValidateVar(weaponID, "required,uuid"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidWeaponID)
			return
		}

		view, err := svc.GetWeaponStats(r.Context(), player, weaponID)
		if err != nil {
			respondServiceError(w, r, "get weapon stats", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}
