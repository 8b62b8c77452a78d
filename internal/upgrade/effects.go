package upgrade

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
	"github.com/osse101/UpgradeForge_Go/internal/metrics"
	"github.com/osse101/UpgradeForge_Go/internal/repository"
	"github.com/osse101/UpgradeForge_Go/internal/roll"
)

// Executor performs the randomized stat mutations behind each recipe
type Executor struct {
	repo    repository.Upgrade
	catalog *catalog
	roller  *roll.Roller
}

// newExecutor creates an Executor. Stat templates are read through the catalog.
func newExecutor(repo repository.Upgrade, cat *catalog, roller *roll.Roller) *Executor {
	return &Executor{repo: repo, catalog: cat, roller: roller}
}

// AddRandomStat rolls a tier and a damage type and attaches the matching catalog
// stat to the weapon. A shield caps the rolled tier. It returns the new modifier id.
func (e *Executor) AddRandomStat(ctx context.Context, weaponID string, shield *domain.ItemType) (string, error) {
	log := logger.FromContext(ctx)

	rolled := e.roller.RollTier()
	tier := rolled
	if shield != nil {
		tier = roll.ApplyShield(rolled, shield.Tier)
	}
	statType := e.roller.RollType()

	tmpl, err := e.catalog.StatTemplate(ctx, tier, statType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Error(LogMsgMissingTemplate, "tier", tier, "type", statType)
			return "", fmt.Errorf("no stat template for tier %d type %s: %w", tier, statType, domain.ErrConfiguration)
		}
		return "", err
	}

	id, err := e.repo.AddStat(ctx, weaponID, tmpl.ID)
	if err != nil {
		return "", err
	}

	metrics.StatModifiersRolled.WithLabelValues(strconv.Itoa(int(tier)), string(statType)).Inc()
	log.Info(LogMsgStatRolled, "weapon_id", weaponID, "weapon_stat_id", id,
		"rolled_tier", rolled, "tier", tier, "type", statType, "shielded", shield != nil)
	return id, nil
}

// RemoveConstrainedStat removes one of the given stats and returns its id.
// The stats are the snapshot taken before resolution; callers must already have
// authorized the weapon.
func (e *Executor) RemoveConstrainedStat(ctx context.Context, stats []domain.StatModifier, shield *domain.ItemType) (string, error) {
	victim, ok := e.pickRemovalTarget(stats, shield)
	if !ok {
		return "", fmt.Errorf("no stat to remove: %w", domain.ErrNotFound)
	}

	if err := e.repo.RemoveStat(ctx, victim.ID); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info(LogMsgStatRemoved, "weapon_id", victim.WeaponID,
		"weapon_stat_id", victim.ID, "tier", victim.Tier, "type", victim.Type, "shielded", shield != nil)
	return victim.ID, nil
}

// pickRemovalTarget chooses uniformly among stats below the shield's tier, or
// among all stats when there is no shield or nothing sits below it
func (e *Executor) pickRemovalTarget(stats []domain.StatModifier, shield *domain.ItemType) (domain.StatModifier, bool) {
	candidates := stats
	if shield != nil {
		if below := statsBelowTier(stats, shield.Tier); len(below) > 0 {
			candidates = below
		}
	}

	idx := e.roller.Pick(len(candidates))
	if idx < 0 {
		return domain.StatModifier{}, false
	}
	return candidates[idx], true
}

func statsBelowTier(stats []domain.StatModifier, tier domain.Tier) []domain.StatModifier {
	var below []domain.StatModifier
	for _, s := range stats {
		if s.Tier < tier {
			below = append(below, s)
		}
	}
	return below
}
