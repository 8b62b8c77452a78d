package roll

import "github.com/osse101/UpgradeForge_Go/internal/domain"

// TierWeights holds the relative weight of tiers 1..9.
// Weights strictly decrease so lower tiers are always more likely.
var TierWeights = [9]int{30, 22, 16, 12, 8, 5, 4, 2, 1}

// TypeWeights holds the relative weight of each damage type (uniform)
var TypeWeights = map[domain.DamageType]int{
	domain.DamagePhysical:  1,
	domain.DamageFire:      1,
	domain.DamageCold:      1,
	domain.DamageLightning: 1,
	domain.DamageChaos:     1,
}

// ShieldMargin is how many tiers above its own tier a shield item lets a roll reach
const ShieldMargin domain.Tier = 1
