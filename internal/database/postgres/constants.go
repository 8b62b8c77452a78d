package postgres

// Error Messages - Weapon Operations
const (
	ErrMsgFailedToGetWeapon      = "failed to get weapon"
	ErrMsgFailedToGetWeaponStats = "failed to get weapon stats"
	ErrMsgFailedToAddStat        = "failed to add weapon stat"
	ErrMsgFailedToRemoveStat     = "failed to remove weapon stat"
	ErrMsgFailedToGetTemplate    = "failed to get stat template"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetItem           = "failed to get item"
	ErrMsgFailedToGetInventoryEntry = "failed to get inventory entry"
	ErrMsgFailedToConsumeItem       = "failed to consume item"
)

// Error Messages - Identifier Parsing
const (
	ErrMsgInvalidWeaponID = "invalid weapon id"
	ErrMsgInvalidItemID   = "invalid item id"
	ErrMsgInvalidStatID   = "invalid stat id"
)
