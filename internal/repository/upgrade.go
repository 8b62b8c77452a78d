package repository

import (
	"context"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// Upgrade is the sole gateway to the weapon, stat and inventory tables used by
// the upgrade engine. Implementations issue one statement per call and do not
// wrap calls in a shared transaction.
type Upgrade interface {
	// Weapons
	GetWeapon(ctx context.Context, weaponID string) (*domain.Weapon, error)
	GetWeaponOwner(ctx context.Context, weaponID string) (string, error)
	GetWeaponStats(ctx context.Context, weaponID string) ([]domain.StatModifier, error)

	// Static catalogs
	GetItem(ctx context.Context, itemID string) (*domain.ItemType, error)
	GetStatTemplate(ctx context.Context, tier domain.Tier, statType domain.DamageType) (*domain.StatTemplate, error)

	// Inventory
	GetInventoryEntry(ctx context.Context, username, itemID string) (*domain.InventoryEntry, error)
	ConsumeItem(ctx context.Context, username, itemID string) error

	// Stat mutation. RemoveStat does not check ownership; callers must have
	// authorized the weapon already.
	AddStat(ctx context.Context, weaponID, statID string) (string, error)
	RemoveStat(ctx context.Context, weaponStatID string) error
}
