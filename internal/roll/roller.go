package roll

import (
	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/utils"
)

// Roller draws tiers, types and uniform picks from a random source
type Roller struct {
	rnd func() float64
}

// NewRoller creates a Roller. A nil source falls back to utils.RandomFloat.
func NewRoller(rnd func() float64) *Roller {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Roller{rnd: rnd}
}

// RollTier draws a weighted tier in 1..9
func (r *Roller) RollTier() domain.Tier {
	return TierFromDraw(r.rnd())
}

// RollType draws a damage type
func (r *Roller) RollType() domain.DamageType {
	return TypeFromDraw(r.rnd())
}

// Pick draws a uniform index in [0, n); -1 when n <= 0
func (r *Roller) Pick(n int) int {
	return utils.IndexFromDraw(r.rnd(), n)
}
