package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWeaponID = "7f1c2a5e-3b4d-4e6f-8a9b-0c1d2e3f4a5b"

func TestValidator_UpgradeRequest(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		req       UpgradeRequest
		wantErr   bool
		wantField string
	}{
		{"one item", UpgradeRequest{WeaponID: validWeaponID, Items: []string{"i1"}}, false, ""},
		{"two items", UpgradeRequest{WeaponID: validWeaponID, Items: []string{"i1", "i2"}}, false, ""},
		// Item count is enforced by the service so the client sees the reload message
		{"three items", UpgradeRequest{WeaponID: validWeaponID, Items: []string{"i1", "i2", "i3"}}, false, ""},
		{"missing weapon", UpgradeRequest{Items: []string{"i1"}}, true, "id"},
		{"weapon not a uuid", UpgradeRequest{WeaponID: "42", Items: []string{"i1"}}, true, "id"},
		{"missing items", UpgradeRequest{WeaponID: validWeaponID}, true, "items"},
		{"blank item", UpgradeRequest{WeaponID: validWeaponID, Items: []string{""}}, true, "items[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, FormatValidationError(err), tt.wantField)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	errs := FormatValidationError(errors.New("boom"))
	assert.Equal(t, "Invalid request format", errs["error"])

	err := GetValidator().ValidateStruct(UpgradeRequest{WeaponID: "nope", Items: []string{"i1"}})
	require.Error(t, err)
	assert.Equal(t, "Must be a valid id", FormatValidationError(err)["id"])
}

func TestValidator_ValidateVar(t *testing.T) {
	v := GetValidator()
	assert.NoError(t, v.ValidateVar(validWeaponID, "required,uuid"))
	assert.Error(t, v.ValidateVar("", "required,uuid"))
	assert.Error(t, v.ValidateVar("not-a-uuid", "required,uuid"))
}
