package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

func TestUpgradeRepository_Weapon(t *testing.T) {
	pool := requirePool(t)
	repo := NewUpgradeRepository(pool)
	ctx := context.Background()

	weaponID := seedWeapon(t, pool, "weapon_owner", 4)

	t.Run("GetWeapon derives base damage", func(t *testing.T) {
		w, err := repo.GetWeapon(ctx, weaponID)
		require.NoError(t, err)
		assert.Equal(t, "weapon_owner", w.Owner)
		assert.Equal(t, domain.Tier(4), w.Tier)
		assert.Equal(t, domain.TierToDamage(4), w.Damage)
	})

	t.Run("GetWeaponOwner", func(t *testing.T) {
		owner, err := repo.GetWeaponOwner(ctx, weaponID)
		require.NoError(t, err)
		assert.Equal(t, "weapon_owner", owner)
	})

	t.Run("unknown weapon is not found", func(t *testing.T) {
		_, err := repo.GetWeapon(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repo.GetWeaponOwner(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpgradeRepository_AddAndRemoveStat(t *testing.T) {
	pool := requirePool(t)
	repo := NewUpgradeRepository(pool)
	ctx := context.Background()

	weaponID := seedWeapon(t, pool, "stat_owner", 2)

	tmpl, err := repo.GetStatTemplate(ctx, 3, domain.DamageFire)
	require.NoError(t, err)
	assert.Equal(t, domain.Tier(3), tmpl.Tier)
	assert.Equal(t, domain.DamageFire, tmpl.Type)

	// Duplicates of the same template are allowed
	first, err := repo.AddStat(ctx, weaponID, tmpl.ID)
	require.NoError(t, err)
	second, err := repo.AddStat(ctx, weaponID, tmpl.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	stats, err := repo.GetWeaponStats(ctx, weaponID)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	for _, s := range stats {
		assert.Equal(t, domain.Tier(3), s.Tier)
		assert.Equal(t, domain.DamageFire, s.Type)
		assert.Equal(t, domain.TierToDamage(3), s.Damage)
	}

	require.NoError(t, repo.RemoveStat(ctx, first))
	stats, err = repo.GetWeaponStats(ctx, weaponID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, second, stats[0].ID)

	assert.ErrorIs(t, repo.RemoveStat(ctx, first), domain.ErrNotFound)
}

func TestUpgradeRepository_GetStatTemplate_Missing(t *testing.T) {
	pool := requirePool(t)
	repo := NewUpgradeRepository(pool)

	_, err := repo.GetStatTemplate(context.Background(), 3, domain.DamageType("holy"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpgradeRepository_GetItem(t *testing.T) {
	pool := requirePool(t)
	repo := NewUpgradeRepository(pool)

	item, err := repo.GetItem(context.Background(), domain.ItemIDAstralStone)
	require.NoError(t, err)
	assert.Equal(t, "Astral Stone", item.Name)

	_, err = repo.GetItem(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpgradeRepository_ConsumeItem(t *testing.T) {
	pool := requirePool(t)
	repo := NewUpgradeRepository(pool)
	ctx := context.Background()
	const player = "consumer"

	seedInventory(t, pool, player, domain.ItemIDWeaponElixir, 2)

	require.NoError(t, repo.ConsumeItem(ctx, player, domain.ItemIDWeaponElixir))
	entry, err := repo.GetInventoryEntry(ctx, player, domain.ItemIDWeaponElixir)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Quantity)

	// Last unit deletes the entry rather than storing zero
	require.NoError(t, repo.ConsumeItem(ctx, player, domain.ItemIDWeaponElixir))
	_, err = repo.GetInventoryEntry(ctx, player, domain.ItemIDWeaponElixir)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var rows int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM resource_inventory WHERE username = $1", player).Scan(&rows))
	assert.Zero(t, rows)

	err = repo.ConsumeItem(ctx, player, domain.ItemIDWeaponElixir)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestUpgradeRepository_ConsumeItem_LastUnitRace verifies the guarded writes never
// hand the same last unit to two consumers.
func TestUpgradeRepository_ConsumeItem_LastUnitRace(t *testing.T) {
	pool := requirePool(t)
	repo := NewUpgradeRepository(pool)
	ctx := context.Background()
	const player = "racer"
	const workers = 8

	seedInventory(t, pool, player, domain.ItemIDAstralStone, 1)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.ConsumeItem(ctx, player, domain.ItemIDAstralStone)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded, "exactly one consumer may take the last unit")
}
