package upgrade

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/repository"
)

// catalog fronts the static item and stat catalogs with an expiring LRU.
// Misses and errors are never cached. A size <= 0 disables caching.
type catalog struct {
	repo      repository.Upgrade
	items     *expirable.LRU[string, *domain.ItemType]
	templates *expirable.LRU[string, *domain.StatTemplate]
}

func newCatalog(repo repository.Upgrade, size int, ttl time.Duration) *catalog {
	c := &catalog{repo: repo}
	if size > 0 {
		c.items = expirable.NewLRU[string, *domain.ItemType](size, nil, ttl)
		c.templates = expirable.NewLRU[string, *domain.StatTemplate](size, nil, ttl)
	}
	return c
}

// Item returns the catalog row for an item type id
func (c *catalog) Item(ctx context.Context, itemID string) (*domain.ItemType, error) {
	if c.items != nil {
		if item, ok := c.items.Get(itemID); ok {
			return item, nil
		}
	}

	item, err := c.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if c.items != nil {
		c.items.Add(itemID, item)
	}
	return item, nil
}

// StatTemplate returns the stat catalog row for a tier and damage type
func (c *catalog) StatTemplate(ctx context.Context, tier domain.Tier, statType domain.DamageType) (*domain.StatTemplate, error) {
	key := templateKey(tier, statType)
	if c.templates != nil {
		if tmpl, ok := c.templates.Get(key); ok {
			return tmpl, nil
		}
	}

	tmpl, err := c.repo.GetStatTemplate(ctx, tier, statType)
	if err != nil {
		return nil, err
	}
	if c.templates != nil {
		c.templates.Add(key, tmpl)
	}
	return tmpl, nil
}

// Purge drops every cached entry
func (c *catalog) Purge() {
	if c.items != nil {
		c.items.Purge()
	}
	if c.templates != nil {
		c.templates.Purge()
	}
}

func templateKey(tier domain.Tier, statType domain.DamageType) string {
	return fmt.Sprintf("%d:%s", tier, statType)
}
