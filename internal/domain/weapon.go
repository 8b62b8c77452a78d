package domain

// Tier classifies weapons and stat modifiers, 1 (weakest) to 9 (strongest)
type Tier int

const (
	MinTier Tier = 1
	MaxTier Tier = 9
)

// Valid reports whether the tier lies inside [MinTier, MaxTier]
func (t Tier) Valid() bool {
	return t >= MinTier && t <= MaxTier
}

// DamageRange is an inclusive min/max damage pair
type DamageRange struct {
	Min int `json:"min_damage"`
	Max int `json:"max_damage"`
}

// Add returns the component-wise sum of two ranges
func (d DamageRange) Add(o DamageRange) DamageRange {
	return DamageRange{Min: d.Min + o.Min, Max: d.Max + o.Max}
}

// tierDamage is indexed by tier; index 0 is the out-of-range fallback
var tierDamage = [...]DamageRange{
	{0, 0},
	{5, 9},
	{8, 14},
	{12, 21},
	{18, 32},
	{27, 47},
	{41, 71},
	{62, 106},
	{82, 159},
	{103, 212},
}

// TierToDamage derives the damage range of a tier. Weapons and stat modifiers
// share this table. Tiers outside 1..9 yield a zero range.
func TierToDamage(t Tier) DamageRange {
	if !t.Valid() {
		return tierDamage[0]
	}
	return tierDamage[t]
}

// DamageType tags the element of a stat modifier
type DamageType string

const (
	DamagePhysical  DamageType = "physical"
	DamageFire      DamageType = "fire"
	DamageCold      DamageType = "cold"
	DamageLightning DamageType = "lightning"
	DamageChaos     DamageType = "chaos"
)

// DamageTypes lists every damage type in roll order
var DamageTypes = []DamageType{
	DamagePhysical,
	DamageFire,
	DamageCold,
	DamageLightning,
	DamageChaos,
}

// Weapon is a player-owned weapon instance
type Weapon struct {
	ID       string      `json:"weapon_id" db:"weapon_id"`
	Owner    string      `json:"owner" db:"owner_username"`
	Name     string      `json:"name" db:"weapon_name"`
	Tier     Tier        `json:"tier" db:"tier"`
	ImageURL string      `json:"img_url" db:"image_url"`
	Damage   DamageRange `json:"damage"`
}

// StatModifier is a stat attached to a weapon
type StatModifier struct {
	ID       string      `json:"weapon_stat_id" db:"weapon_stat_id"`
	WeaponID string      `json:"weapon_id" db:"weapon_id"`
	StatID   string      `json:"stat_id" db:"stat_id"`
	Tier     Tier        `json:"tier" db:"tier"`
	Type     DamageType  `json:"type" db:"stat_type"`
	Damage   DamageRange `json:"damage"`
}

// StatTemplate is a row of the static stats catalog, one per (tier, type)
type StatTemplate struct {
	ID   string     `json:"stat_id" db:"stat_id"`
	Tier Tier       `json:"tier" db:"tier"`
	Type DamageType `json:"type" db:"stat_type"`
}
