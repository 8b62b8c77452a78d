package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidWeaponID       = "Invalid weapon id"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgResourceNotFound      = "Resource not found."
	ErrMsgItemNotFound          = "Item not found"
	ErrMsgConflict              = "The weapon changed while upgrading. Please try again."
	ErrMsgUnavailable           = "database connection failed"
)

// Log messages
const (
	LogMsgUpgradeApplied    = "Weapon upgrade applied"
	LogMsgUpgradeInfeasible = "Weapon upgrade not possible"
	LogMsgServiceError      = "Service call failed"
	LogMsgMissingPlayer     = "Request reached handler without a player"
	LogMsgReadinessFailed   = "Readiness check failed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
