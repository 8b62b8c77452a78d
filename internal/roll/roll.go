// Package roll produces the weighted random draws behind weapon upgrades.
//
// Every function here is pure: randomness enters only through a draw in
// [0.0, 1.0) supplied by the caller, so results are reproducible in tests.
package roll

import (
	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/utils"
)

// tierEntry is a tier with the cumulative weight up to and including it
type tierEntry struct {
	Tier        domain.Tier
	CumulWeight int
}

// typeEntry is a damage type with its cumulative weight
type typeEntry struct {
	Type        domain.DamageType
	CumulWeight int
}

var (
	tierTable, tierTotalWeight = buildTierTable(TierWeights)
	typeTable, typeTotalWeight = buildTypeTable(TypeWeights)
)

func buildTierTable(weights [9]int) ([]tierEntry, int) {
	table := make([]tierEntry, 0, len(weights))
	total := 0
	for i, w := range weights {
		total += w
		table = append(table, tierEntry{Tier: domain.Tier(i + 1), CumulWeight: total})
	}
	return table, total
}

func buildTypeTable(weights map[domain.DamageType]int) ([]typeEntry, int) {
	table := make([]typeEntry, 0, len(weights))
	total := 0
	// iterate domain.DamageTypes so the table order is stable
	for _, dt := range domain.DamageTypes {
		w, ok := weights[dt]
		if !ok || w <= 0 {
			continue
		}
		total += w
		table = append(table, typeEntry{Type: dt, CumulWeight: total})
	}
	return table, total
}

// TierFromDraw returns the tier chosen by a weighted roll in [0, total tier weight).
func TierFromDraw(draw float64) domain.Tier {
	roll := weightedRoll(draw, tierTotalWeight)
	lo, hi := 0, len(tierTable)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if tierTable[mid].CumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return tierTable[lo].Tier
}

// TypeFromDraw returns the damage type chosen by a weighted roll.
func TypeFromDraw(draw float64) domain.DamageType {
	roll := weightedRoll(draw, typeTotalWeight)
	lo, hi := 0, len(typeTable)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if typeTable[mid].CumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return typeTable[lo].Type
}

func weightedRoll(draw float64, total int) int {
	return utils.IndexFromDraw(draw, total)
}

// ShieldCeiling is the highest tier a shielded roll may produce.
// Out-of-range shield tiers are clamped into 1..9 first.
func ShieldCeiling(shield domain.Tier) domain.Tier {
	shield = clampTier(shield)
	ceiling := shield + ShieldMargin
	if ceiling > domain.MaxTier {
		return domain.MaxTier
	}
	return ceiling
}

// ApplyShield caps a rolled tier at the ceiling granted by the shield item.
func ApplyShield(rolled, shield domain.Tier) domain.Tier {
	rolled = clampTier(rolled)
	if ceiling := ShieldCeiling(shield); rolled > ceiling {
		return ceiling
	}
	return rolled
}

func clampTier(t domain.Tier) domain.Tier {
	switch {
	case t < domain.MinTier:
		return domain.MinTier
	case t > domain.MaxTier:
		return domain.MaxTier
	}
	return t
}
