package upgrade

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// WeaponView is a weapon with its modifiers and the damage they add up to
type WeaponView struct {
	Weapon      domain.Weapon      `json:"weapon"`
	Stats       []StatView         `json:"stats"`
	TotalDamage domain.DamageRange `json:"total_damage"`
}

// StatView is a stat modifier with a display label
type StatView struct {
	domain.StatModifier
	Label string `json:"label"`
}

// GetWeaponStats returns the weapon view. Only the owner may read it.
func (s *service) GetWeaponStats(ctx context.Context, player, weaponID string) (*WeaponView, error) {
	weapon, err := s.repo.GetWeapon(ctx, weaponID)
	if err != nil {
		return nil, err
	}
	if weapon.Owner != player {
		return nil, fmt.Errorf("weapon %s: %w", weaponID, domain.ErrUnauthorized)
	}

	stats, err := s.repo.GetWeaponStats(ctx, weaponID)
	if err != nil {
		return nil, err
	}

	return buildWeaponView(*weapon, stats), nil
}

func buildWeaponView(weapon domain.Weapon, stats []domain.StatModifier) *WeaponView {
	view := &WeaponView{
		Weapon:      weapon,
		Stats:       make([]StatView, len(stats)),
		TotalDamage: weapon.Damage,
	}
	for i, st := range stats {
		view.Stats[i] = StatView{StatModifier: st, Label: statLabel(st)}
		view.TotalDamage = view.TotalDamage.Add(st.Damage)
	}
	return view
}

// statLabel renders e.g. "Tier 3 Fire". Casers are not safe to share, so one is built per call.
func statLabel(st domain.StatModifier) string {
	return fmt.Sprintf("Tier %d %s", st.Tier, cases.Title(language.English).String(string(st.Type)))
}
