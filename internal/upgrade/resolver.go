package upgrade

import (
	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// Resolution is the outcome of matching submitted items against the registry.
// Effect is only set when Feasible is true.
type Resolution struct {
	Feasible  bool
	Message   string
	RecipeKey string
	Effect    EffectFunc
}

// Resolver selects a recipe by the first submitted item and checks it against
// the weapon's stats
type Resolver struct {
	recipes  Registry
	executor *Executor
}

// NewResolver creates a Resolver over the given registry
func NewResolver(recipes Registry, executor *Executor) *Resolver {
	return &Resolver{recipes: recipes, executor: executor}
}

// Resolve matches items in submission order. A nil or unknown first item is an
// infeasible "No such combination"; the optional second item is passed to the
// recipe as its shield.
func (r *Resolver) Resolve(items []*domain.ItemType, weaponID string, stats []domain.StatModifier, player string) Resolution {
	if len(items) == 0 || items[0] == nil {
		return Resolution{Message: MsgNoSuchCombination, RecipeKey: domain.RecipeKeyUnknown}
	}

	recipe, ok := r.recipes.Lookup(items[0].ID)
	if !ok {
		return Resolution{Message: MsgNoSuchCombination, RecipeKey: domain.RecipeKeyUnknown}
	}

	feasible, msg := recipe.Feasible(stats)
	res := Resolution{Feasible: feasible, Message: msg, RecipeKey: recipe.Key()}
	if !feasible {
		return res
	}

	target := Target{
		Player:   player,
		WeaponID: weaponID,
		Stats:    append([]domain.StatModifier(nil), stats...),
	}
	if len(items) > 1 {
		target.Shield = items[1]
	}
	res.Effect = recipe.Bind(r.executor, target)
	return res
}
