package upgrade

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
	"github.com/osse101/UpgradeForge_Go/internal/roll"
)

const (
	testPlayer = "alice"
	testOther  = "mallory"

	testWeaponID = "11111111-1111-4111-8111-111111111111"

	shieldTier3ID = "6d0f3a8e-2c47-4b1e-9f55-0b7c1f6a2d31"
	shieldTier5ID = "b1e7c9a2-5d34-4f0b-8e21-7a9c3d5e6f40"
	shieldTier1ID = "c0c0c0c0-1111-4111-8111-000000000001"
)

// fakeRepository is an in-memory repository.Upgrade that counts calls and
// supports error injection
type fakeRepository struct {
	mu sync.Mutex

	weapons   map[string]*domain.Weapon
	stats     map[string][]domain.StatModifier // weapon id -> modifiers
	items     map[string]*domain.ItemType
	templates map[string]*domain.StatTemplate // "tier:type" -> template
	inventory map[string]int                  // "player:item" -> quantity

	calls      map[string]int
	mutations  int
	failOn     map[string]error
	consumeLog []string
}

func newFakeRepository() *fakeRepository {
	r := &fakeRepository{
		weapons:   make(map[string]*domain.Weapon),
		stats:     make(map[string][]domain.StatModifier),
		items:     make(map[string]*domain.ItemType),
		templates: make(map[string]*domain.StatTemplate),
		inventory: make(map[string]int),
		calls:     make(map[string]int),
		failOn:    make(map[string]error),
	}

	r.items[domain.ItemIDWeaponElixir] = &domain.ItemType{ID: domain.ItemIDWeaponElixir, Name: "Weapon Elixir", Tier: 1}
	r.items[domain.ItemIDAstralStone] = &domain.ItemType{ID: domain.ItemIDAstralStone, Name: "Astral Stone", Tier: 1}
	r.items[shieldTier1ID] = &domain.ItemType{ID: shieldTier1ID, Name: "Cracked Ward Shard", Tier: 1}
	r.items[shieldTier3ID] = &domain.ItemType{ID: shieldTier3ID, Name: "Lesser Ward Shard", Tier: 3}
	r.items[shieldTier5ID] = &domain.ItemType{ID: shieldTier5ID, Name: "Ward Shard", Tier: 5}

	for tier := domain.MinTier; tier <= domain.MaxTier; tier++ {
		for _, dt := range domain.DamageTypes {
			r.templates[templateKey(tier, dt)] = &domain.StatTemplate{ID: uuid.NewString(), Tier: tier, Type: dt}
		}
	}
	return r
}

func (r *fakeRepository) addWeapon(id, owner string, tier domain.Tier, statTiers ...domain.Tier) {
	r.weapons[id] = &domain.Weapon{ID: id, Owner: owner, Name: "Test Blade", Tier: tier, Damage: domain.TierToDamage(tier)}
	for _, st := range statTiers {
		r.stats[id] = append(r.stats[id], domain.StatModifier{
			ID:       uuid.NewString(),
			WeaponID: id,
			StatID:   r.templates[templateKey(st, domain.DamageFire)].ID,
			Tier:     st,
			Type:     domain.DamageFire,
			Damage:   domain.TierToDamage(st),
		})
	}
}

func (r *fakeRepository) give(player, itemID string, qty int) {
	r.inventory[player+":"+itemID] = qty
}

func (r *fakeRepository) quantity(player, itemID string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.inventory[player+":"+itemID]
	return q, ok
}

func (r *fakeRepository) statCount(weaponID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stats[weaponID])
}

func (r *fakeRepository) callCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

func (r *fakeRepository) totalCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

// enter records a call and returns any injected error
func (r *fakeRepository) enter(name string) error {
	r.calls[name]++
	return r.failOn[name]
}

func (r *fakeRepository) GetWeapon(ctx context.Context, weaponID string) (*domain.Weapon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("GetWeapon"); err != nil {
		return nil, err
	}
	w, ok := r.weapons[weaponID]
	if !ok {
		return nil, domain.ErrWeaponNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeRepository) GetWeaponOwner(ctx context.Context, weaponID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("GetWeaponOwner"); err != nil {
		return "", err
	}
	w, ok := r.weapons[weaponID]
	if !ok {
		return "", domain.ErrWeaponNotFound
	}
	return w.Owner, nil
}

func (r *fakeRepository) GetWeaponStats(ctx context.Context, weaponID string) ([]domain.StatModifier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("GetWeaponStats"); err != nil {
		return nil, err
	}
	return append([]domain.StatModifier(nil), r.stats[weaponID]...), nil
}

func (r *fakeRepository) GetItem(ctx context.Context, itemID string) (*domain.ItemType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("GetItem"); err != nil {
		return nil, err
	}
	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotFound)
	}
	cp := *item
	return &cp, nil
}

func (r *fakeRepository) GetStatTemplate(ctx context.Context, tier domain.Tier, statType domain.DamageType) (*domain.StatTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("GetStatTemplate"); err != nil {
		return nil, err
	}
	tmpl, ok := r.templates[templateKey(tier, statType)]
	if !ok {
		return nil, fmt.Errorf("stat template: %w", domain.ErrNotFound)
	}
	cp := *tmpl
	return &cp, nil
}

func (r *fakeRepository) GetInventoryEntry(ctx context.Context, username, itemID string) (*domain.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("GetInventoryEntry"); err != nil {
		return nil, err
	}
	q, ok := r.inventory[username+":"+itemID]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotOwned)
	}
	return &domain.InventoryEntry{ID: username + ":" + itemID, Owner: username, ItemID: itemID, Quantity: q}, nil
}

func (r *fakeRepository) ConsumeItem(ctx context.Context, username, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("ConsumeItem"); err != nil {
		return err
	}
	key := username + ":" + itemID
	q, ok := r.inventory[key]
	if !ok {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotOwned)
	}
	if q <= 1 {
		delete(r.inventory, key)
	} else {
		r.inventory[key] = q - 1
	}
	r.mutations++
	r.consumeLog = append(r.consumeLog, itemID)
	return nil
}

func (r *fakeRepository) AddStat(ctx context.Context, weaponID, statID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("AddStat"); err != nil {
		return "", err
	}
	var tmpl *domain.StatTemplate
	for _, t := range r.templates {
		if t.ID == statID {
			tmpl = t
			break
		}
	}
	if tmpl == nil {
		return "", fmt.Errorf("stat %s: %w", statID, domain.ErrNotFound)
	}
	id := uuid.NewString()
	r.stats[weaponID] = append(r.stats[weaponID], domain.StatModifier{
		ID:       id,
		WeaponID: weaponID,
		StatID:   statID,
		Tier:     tmpl.Tier,
		Type:     tmpl.Type,
		Damage:   domain.TierToDamage(tmpl.Tier),
	})
	r.mutations++
	return id, nil
}

func (r *fakeRepository) RemoveStat(ctx context.Context, weaponStatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("RemoveStat"); err != nil {
		return err
	}
	for wid, list := range r.stats {
		for i, s := range list {
			if s.ID == weaponStatID {
				r.stats[wid] = append(list[:i:i], list[i+1:]...)
				r.mutations++
				return nil
			}
		}
	}
	return fmt.Errorf("weapon stat %s: %w", weaponStatID, domain.ErrNotFound)
}

// fixedSource returns a random source that always yields v
func fixedSource(v float64) func() float64 {
	return func() float64 { return v }
}

// sequenceSource yields the given draws in order, repeating the last one
func sequenceSource(draws ...float64) func() float64 {
	var mu sync.Mutex
	i := 0
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := draws[i]
		if i < len(draws)-1 {
			i++
		}
		return v
	}
}

func newTestService(repo *fakeRepository, rnd func() float64) Service {
	return NewService(repo, roll.NewRoller(rnd), DefaultConfig())
}

func statsWithTiers(tiers ...domain.Tier) []domain.StatModifier {
	out := make([]domain.StatModifier, len(tiers))
	for i, t := range tiers {
		out[i] = domain.StatModifier{ID: fmt.Sprintf("stat-%d", i), WeaponID: testWeaponID, Tier: t, Type: domain.DamageCold}
	}
	return out
}
