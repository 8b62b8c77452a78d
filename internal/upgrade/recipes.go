package upgrade

import (
	"context"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// weaponElixir adds one weighted random stat modifier
type weaponElixir struct{}

func (weaponElixir) Key() string { return domain.RecipeKeyWeaponElixir }

func (weaponElixir) Feasible(stats []domain.StatModifier) (bool, string) {
	if len(stats) >= domain.MaxWeaponStats {
		return false, MsgWeaponStatsFull
	}
	return true, MsgWeaponUpgraded
}

func (weaponElixir) Bind(exec *Executor, target Target) EffectFunc {
	return func(ctx context.Context) (string, error) {
		return exec.AddRandomStat(ctx, target.WeaponID, target.Shield)
	}
}

// astralStone removes one stat modifier. With a shield item, modifiers at or
// above the shield's tier are spared when possible.
type astralStone struct{}

func (astralStone) Key() string { return domain.RecipeKeyAstralStone }

func (astralStone) Feasible(stats []domain.StatModifier) (bool, string) {
	if len(stats) == 0 {
		return false, MsgNoStatsToDelete
	}
	return true, MsgWeaponUpgraded
}

func (astralStone) Bind(exec *Executor, target Target) EffectFunc {
	return func(ctx context.Context) (string, error) {
		return exec.RemoveConstrainedStat(ctx, target.Stats, target.Shield)
	}
}
