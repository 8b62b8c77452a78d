package upgrade

import (
	"context"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// EffectFunc applies an already resolved upgrade to the store and returns the
// id of the stat modifier it added or removed
type EffectFunc func(ctx context.Context) (string, error)

// Target is everything an effect needs, captured when the combination is resolved.
// Stats is the snapshot read before resolution; effects never re-read it.
type Target struct {
	Player   string
	WeaponID string
	Stats    []domain.StatModifier
	// Shield is the optional second item, nil when only one item was submitted
	Shield *domain.ItemType
}

// Recipe is one entry of the combination registry, keyed by its primary item id.
// A second item never selects a recipe; it only modifies the one selected.
type Recipe interface {
	// Key names the recipe in logs and metrics
	Key() string
	// Feasible checks the precondition against the weapon's current stats.
	// The message is returned to the player either way.
	Feasible(stats []domain.StatModifier) (bool, string)
	// Bind captures target and returns the effect to run once items are consumed
	Bind(exec *Executor, target Target) EffectFunc
}

// Registry maps a primary item type id to its recipe
type Registry map[string]Recipe

// DefaultRegistry returns the built-in combinations
func DefaultRegistry() Registry {
	return Registry{
		domain.ItemIDWeaponElixir: weaponElixir{},
		domain.ItemIDAstralStone:  astralStone{},
	}
}

// Lookup returns the recipe registered for a primary item id
func (r Registry) Lookup(primaryItemID string) (Recipe, bool) {
	recipe, ok := r[primaryItemID]
	return recipe, ok
}
