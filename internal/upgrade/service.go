package upgrade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/UpgradeForge_Go/internal/concurrency"
	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
	"github.com/osse101/UpgradeForge_Go/internal/metrics"
	"github.com/osse101/UpgradeForge_Go/internal/repository"
	"github.com/osse101/UpgradeForge_Go/internal/roll"
)

// Service applies upgrade items to weapons
type Service interface {
	// Upgrade consumes the submitted items and applies their combination to the
	// weapon. An infeasible combination is not an error: the result carries the
	// explanation and nothing is consumed.
	Upgrade(ctx context.Context, player, weaponID string, itemIDs []string) (*Result, error)
	// GetWeaponStats returns the weapon with its stat modifiers and total damage
	GetWeaponStats(ctx context.Context, player, weaponID string) (*WeaponView, error)
}

// Result is the outcome of an upgrade request
type Result struct {
	Applied bool   `json:"applied"`
	Message string `json:"message"`
	Recipe  string `json:"recipe"`
	// StatID is the modifier that was added or removed
	StatID string `json:"stat_id,omitempty"`
}

// Config tunes the service
type Config struct {
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration
	// SerializeWeapons holds an in-process lock per weapon for the whole request.
	// It only protects against concurrent requests inside this process.
	SerializeWeapons bool
}

// DefaultConfig returns the defaults used when nothing is configured
func DefaultConfig() Config {
	return Config{
		CatalogCacheSize: DefaultCatalogCacheSize,
		CatalogCacheTTL:  DefaultCatalogCacheTTL,
	}
}

type service struct {
	repo     repository.Upgrade
	catalog  *catalog
	executor *Executor
	resolver *Resolver
	locks    *concurrency.LockManager
}

// NewService creates the upgrade service. A nil roller uses the default random source.
// Build it once per process: an enabled catalog cache with a TTL runs two
// janitor goroutines that are never stopped.
func NewService(repo repository.Upgrade, roller *roll.Roller, cfg Config) Service {
	if roller == nil {
		roller = roll.NewRoller(nil)
	}
	cat := newCatalog(repo, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	exec := newExecutor(repo, cat, roller)

	s := &service{
		repo:     repo,
		catalog:  cat,
		executor: exec,
		resolver: NewResolver(DefaultRegistry(), exec),
	}
	if cfg.SerializeWeapons {
		s.locks = concurrency.NewLockManager()
	}
	return s
}

// Upgrade runs validate, authorize, resolve, consume and apply, in that order.
// Consumption is not rolled back if a later item or the effect fails.
func (s *service) Upgrade(ctx context.Context, player, weaponID string, itemIDs []string) (*Result, error) {
	log := logger.FromContext(ctx).With("player", player, "weapon_id", weaponID)
	log.Info(LogMsgUpgradeRequested, "items", itemIDs)

	// Validated
	if len(itemIDs) == 0 || len(itemIDs) > domain.MaxItemsPerUpgrade {
		log.Warn(LogMsgUpgradeRejected, "reason", "item count", "count", len(itemIDs))
		metrics.RecordUpgrade(domain.RecipeKeyUnknown, metrics.OutcomeRejected)
		return nil, fmt.Errorf("%d items submitted: %w", len(itemIDs), domain.ErrTooManyItems)
	}

	if s.locks != nil {
		unlock := s.locks.Lock(weaponLockPrefix + weaponID)
		defer unlock()
	}

	// Authorized
	stats, err := s.authorize(ctx, player, weaponID)
	if err != nil {
		log.Warn(LogMsgUpgradeRejected, "reason", "authorization", "error", err)
		metrics.RecordUpgrade(domain.RecipeKeyUnknown, metrics.OutcomeRejected)
		return nil, err
	}

	items, err := s.lookupItems(ctx, itemIDs)
	if err != nil {
		log.Warn(LogMsgUpgradeRejected, "reason", "item lookup", "error", err)
		metrics.RecordUpgrade(domain.RecipeKeyUnknown, metrics.OutcomeRejected)
		return nil, err
	}

	// Resolved
	res := s.resolver.Resolve(items, weaponID, stats, player)
	if !res.Feasible {
		log.Info(LogMsgUpgradeInfeasible, "recipe", res.RecipeKey, "message", res.Message)
		metrics.RecordUpgrade(res.RecipeKey, metrics.OutcomeInfeasible)
		return &Result{Applied: false, Message: res.Message, Recipe: res.RecipeKey}, nil
	}

	// ItemsConsumed
	for i, itemID := range itemIDs {
		if err := s.consume(ctx, player, itemID); err != nil {
			log.Error(LogMsgConsumptionFailed, "item_id", itemID, "consumed_before_failure", i, "error", err)
			metrics.RecordUpgrade(res.RecipeKey, metrics.OutcomeFailed)
			return nil, err
		}
	}

	// EffectApplied
	statID, err := res.Effect(ctx)
	if err != nil {
		log.Error(LogMsgEffectFailed, "recipe", res.RecipeKey, "error", err)
		metrics.RecordUpgrade(res.RecipeKey, metrics.OutcomeFailed)
		return nil, err
	}

	log.Info(LogMsgUpgradeApplied, "recipe", res.RecipeKey, "weapon_stat_id", statID)
	metrics.RecordUpgrade(res.RecipeKey, metrics.OutcomeApplied)
	return &Result{Applied: true, Message: res.Message, Recipe: res.RecipeKey, StatID: statID}, nil
}

// authorize checks the player owns the weapon and returns its current stats
func (s *service) authorize(ctx context.Context, player, weaponID string) ([]domain.StatModifier, error) {
	owner, err := s.repo.GetWeaponOwner(ctx, weaponID)
	if err != nil {
		return nil, err
	}
	if owner != player {
		return nil, fmt.Errorf("weapon %s: %w", weaponID, domain.ErrUnauthorized)
	}
	return s.repo.GetWeaponStats(ctx, weaponID)
}

// lookupItems resolves item ids to catalog rows in submission order.
// An unknown primary item is left nil so it resolves to "No such combination";
// the shield is not looked up in that case. An unknown shield is an error.
func (s *service) lookupItems(ctx context.Context, itemIDs []string) ([]*domain.ItemType, error) {
	items := make([]*domain.ItemType, len(itemIDs))
	for i, id := range itemIDs {
		item, err := s.catalog.Item(ctx, id)
		if err != nil {
			if i == 0 && errors.Is(err, domain.ErrNotFound) {
				return items, nil
			}
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// consume re-validates that the player still holds the item, then consumes one unit
func (s *service) consume(ctx context.Context, player, itemID string) error {
	if _, err := s.repo.GetInventoryEntry(ctx, player, itemID); err != nil {
		return err
	}
	return s.repo.ConsumeItem(ctx, player, itemID)
}
