package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/UpgradeForge_Go/internal/database/generated"
	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
	"github.com/osse101/UpgradeForge_Go/internal/repository"
)

// UpgradeRepository implements repository.Upgrade for PostgreSQL using sqlc.
// Every method runs a single statement on the pool; there is no shared transaction.
type UpgradeRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewUpgradeRepository creates a new UpgradeRepository
func NewUpgradeRepository(pool *pgxpool.Pool) repository.Upgrade {
	return &UpgradeRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// GetWeapon retrieves a weapon with its base damage
func (r *UpgradeRepository) GetWeapon(ctx context.Context, weaponID string) (*domain.Weapon, error) {
	id, err := parseID(weaponID, ErrMsgInvalidWeaponID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetWeapon(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.ErrWeaponNotFound, ErrMsgFailedToGetWeapon)
	}

	tier := domain.Tier(row.Tier)
	return &domain.Weapon{
		ID:       row.WeaponID.String(),
		Owner:    row.OwnerUsername,
		Name:     row.WeaponName,
		Tier:     tier,
		ImageURL: row.ImageUrl,
		Damage:   domain.TierToDamage(tier),
	}, nil
}

// GetWeaponOwner returns the username recorded as the weapon's owner
func (r *UpgradeRepository) GetWeaponOwner(ctx context.Context, weaponID string) (string, error) {
	id, err := parseID(weaponID, ErrMsgInvalidWeaponID)
	if err != nil {
		return "", err
	}

	owner, err := r.q.GetWeaponOwner(ctx, id)
	if err != nil {
		return "", notFoundOr(err, domain.ErrWeaponNotFound, ErrMsgFailedToGetWeapon)
	}
	return owner, nil
}

// GetWeaponStats lists the stat modifiers attached to a weapon
func (r *UpgradeRepository) GetWeaponStats(ctx context.Context, weaponID string) ([]domain.StatModifier, error) {
	id, err := parseID(weaponID, ErrMsgInvalidWeaponID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.GetWeaponStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWeaponStats, err)
	}

	stats := make([]domain.StatModifier, len(rows))
	for i, row := range rows {
		tier := domain.Tier(row.Tier)
		stats[i] = domain.StatModifier{
			ID:       row.WeaponStatID.String(),
			WeaponID: row.WeaponID.String(),
			StatID:   row.StatID.String(),
			Tier:     tier,
			Type:     domain.DamageType(row.StatType),
			Damage:   domain.TierToDamage(tier),
		}
	}
	return stats, nil
}

// GetItem retrieves a consumable item from the catalog
func (r *UpgradeRepository) GetItem(ctx context.Context, itemID string) (*domain.ItemType, error) {
	id, err := parseID(itemID, ErrMsgInvalidItemID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetItem(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotFound), ErrMsgFailedToGetItem)
	}

	return &domain.ItemType{
		ID:   row.ItemID.String(),
		Name: row.ItemName,
		Tier: domain.Tier(row.Tier),
	}, nil
}

// GetStatTemplate looks up the catalog template for a (tier, type) pair
func (r *UpgradeRepository) GetStatTemplate(ctx context.Context, tier domain.Tier, statType domain.DamageType) (*domain.StatTemplate, error) {
	row, err := r.q.GetStatTemplate(ctx, generated.GetStatTemplateParams{
		Tier:     int32(tier),
		StatType: string(statType),
	})
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("stat template tier=%d type=%s: %w", tier, statType, domain.ErrNotFound), ErrMsgFailedToGetTemplate)
	}

	return &domain.StatTemplate{
		ID:   row.StatID.String(),
		Tier: domain.Tier(row.Tier),
		Type: domain.DamageType(row.StatType),
	}, nil
}

// GetInventoryEntry returns the player's stack of an item
func (r *UpgradeRepository) GetInventoryEntry(ctx context.Context, username, itemID string) (*domain.InventoryEntry, error) {
	id, err := parseID(itemID, ErrMsgInvalidItemID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetInventoryEntry(ctx, generated.GetInventoryEntryParams{
		Username: username,
		ItemID:   id,
	})
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotOwned), ErrMsgFailedToGetInventoryEntry)
	}

	return &domain.InventoryEntry{
		ID:       row.EntryID.String(),
		Owner:    row.Username,
		ItemID:   row.ItemID.String(),
		Quantity: int(row.Quantity),
	}, nil
}

// ConsumeItem removes one unit of an item from the player's inventory.
// The entry is deleted instead of reaching zero. Both writes are guarded by the
// quantity just read, so a concurrent consumer makes this call fail with
// domain.ErrConflict rather than consume a unit twice.
func (r *UpgradeRepository) ConsumeItem(ctx context.Context, username, itemID string) error {
	entry, err := r.GetInventoryEntry(ctx, username, itemID)
	if err != nil {
		return err
	}

	entryID, err := uuid.Parse(entry.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToConsumeItem, err)
	}
	observed := int32(entry.Quantity)

	var affected int64
	if entry.Quantity <= 1 {
		affected, err = r.q.DeleteInventoryEntry(ctx, generated.DeleteInventoryEntryParams{
			EntryID:  entryID,
			Quantity: observed,
		})
	} else {
		affected, err = r.q.DecrementInventoryEntry(ctx, generated.DecrementInventoryEntryParams{
			EntryID:  entryID,
			Quantity: observed,
		})
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToConsumeItem, err)
	}
	if affected == 0 {
		logger.FromContext(ctx).Warn("Inventory entry changed during consumption",
			"username", username, "item_id", itemID, "observed_quantity", entry.Quantity)
		return fmt.Errorf("item %s: %w", itemID, domain.ErrConflict)
	}
	return nil
}

// AddStat attaches a catalog stat to a weapon and returns the new modifier id
func (r *UpgradeRepository) AddStat(ctx context.Context, weaponID, statID string) (string, error) {
	wid, err := parseID(weaponID, ErrMsgInvalidWeaponID)
	if err != nil {
		return "", err
	}
	sid, err := parseID(statID, ErrMsgInvalidStatID)
	if err != nil {
		return "", err
	}

	weaponStatID := uuid.New()
	if err := r.q.InsertWeaponStat(ctx, generated.InsertWeaponStatParams{
		WeaponStatID: weaponStatID,
		WeaponID:     wid,
		StatID:       sid,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToAddStat, err)
	}
	return weaponStatID.String(), nil
}

// RemoveStat deletes a stat modifier by id. It does not check ownership.
func (r *UpgradeRepository) RemoveStat(ctx context.Context, weaponStatID string) error {
	id, err := parseID(weaponStatID, ErrMsgInvalidStatID)
	if err != nil {
		return err
	}

	affected, err := r.q.DeleteWeaponStat(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveStat, err)
	}
	if affected == 0 {
		return fmt.Errorf("weapon stat %s: %w", weaponStatID, domain.ErrNotFound)
	}
	return nil
}
