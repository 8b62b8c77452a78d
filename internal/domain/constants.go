package domain

// Upgrade limits
const (
	// MaxWeaponStats is the number of stat slots a weapon has
	MaxWeaponStats = 6

	// MaxItemsPerUpgrade is the primary item plus an optional shield item
	MaxItemsPerUpgrade = 2
)

// Recipe item ids seeded in the items catalog
const (
	ItemIDWeaponElixir = "a5b5bff3-1ec1-4a94-b998-5394772158ba"
	ItemIDAstralStone  = "3f7d57cd-27b2-4759-9b57-bf56f30ce9d0"
)

// Recipe keys used in logs and metrics
const (
	RecipeKeyWeaponElixir = "weapon_elixir"
	RecipeKeyAstralStone  = "astral_stone"
	RecipeKeyUnknown      = "unknown"
)
