package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Request errors
	ErrMsgBadRequest  = "bad request"
	ErrMsgReloadPage  = "Please reload the browser"
	ErrMsgRefreshPage = "Please refresh the page."

	// Ownership errors
	ErrMsgUnauthorized = "Not Authorized"

	// Lookup errors
	ErrMsgNotFound       = "not found"
	ErrMsgWeaponNotFound = "No record found."
	ErrMsgItemNotFound   = "item not found"

	// Consistency errors
	ErrMsgConflict = "concurrent modification detected"

	// Data setup errors
	ErrMsgConfiguration = "configuration error"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%s: %w", details, domain.ErrXxx) for additional context.
var (
	ErrBadRequest    = errors.New(ErrMsgBadRequest)
	ErrUnauthorized  = errors.New(ErrMsgUnauthorized)
	ErrNotFound      = errors.New(ErrMsgNotFound)
	ErrConflict      = errors.New(ErrMsgConflict)
	ErrConfiguration = errors.New(ErrMsgConfiguration)
)

// Specific errors carrying a user-facing message. Each still matches its
// general kind with errors.Is.
var (
	ErrTooManyItems   = fmt.Errorf("%s: %w", ErrMsgReloadPage, ErrBadRequest)
	ErrWeaponNotFound = fmt.Errorf("%s: %w", ErrMsgWeaponNotFound, ErrNotFound)
	ErrItemNotFound   = fmt.Errorf("%s: %w", ErrMsgItemNotFound, ErrNotFound)
	ErrItemNotOwned   = fmt.Errorf("%s: %w", ErrMsgRefreshPage, ErrNotFound)
)
