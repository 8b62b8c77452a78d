package upgrade

import "time"

// Outcome messages returned to the player
const (
	MsgWeaponUpgraded    = "Weapon upgraded"
	MsgWeaponStatsFull   = "Weapon stats are full"
	MsgNoStatsToDelete   = "No stats to delete"
	MsgNoSuchCombination = "No such combination"
)

// Catalog cache defaults. The stat and item catalogs are static, so entries
// can live for a long time.
const (
	DefaultCatalogCacheSize = 256
	DefaultCatalogCacheTTL  = 30 * time.Minute
)

// Lock key prefix for per-weapon serialization
const weaponLockPrefix = "weapon:"

// Log messages
const (
	LogMsgUpgradeRequested  = "Upgrade requested"
	LogMsgUpgradeRejected   = "Upgrade rejected"
	LogMsgUpgradeInfeasible = "Upgrade infeasible"
	LogMsgUpgradeApplied    = "Weapon upgraded"
	LogMsgConsumptionFailed = "Item consumption failed, earlier items in this request stay consumed"
	LogMsgEffectFailed      = "Upgrade effect failed after items were consumed"
	LogMsgStatRolled        = "Stat modifier rolled"
	LogMsgStatRemoved       = "Stat modifier removed"
	LogMsgMissingTemplate   = "No stat template for rolled tier and type"
)
