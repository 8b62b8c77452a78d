package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// MockUpgrade is a mock implementation of the Upgrade interface
type MockUpgrade struct {
	mock.Mock
}

func (m *MockUpgrade) GetWeapon(ctx context.Context, weaponID string) (*domain.Weapon, error) {
	args := m.Called(ctx, weaponID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Weapon), args.Error(1)
}

func (m *MockUpgrade) GetWeaponOwner(ctx context.Context, weaponID string) (string, error) {
	args := m.Called(ctx, weaponID)
	return args.String(0), args.Error(1)
}

func (m *MockUpgrade) GetWeaponStats(ctx context.Context, weaponID string) ([]domain.StatModifier, error) {
	args := m.Called(ctx, weaponID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatModifier), args.Error(1)
}

func (m *MockUpgrade) GetItem(ctx context.Context, itemID string) (*domain.ItemType, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemType), args.Error(1)
}

func (m *MockUpgrade) GetStatTemplate(ctx context.Context, tier domain.Tier, statType domain.DamageType) (*domain.StatTemplate, error) {
	args := m.Called(ctx, tier, statType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatTemplate), args.Error(1)
}

func (m *MockUpgrade) GetInventoryEntry(ctx context.Context, username, itemID string) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, username, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockUpgrade) ConsumeItem(ctx context.Context, username, itemID string) error {
	args := m.Called(ctx, username, itemID)
	return args.Error(0)
}

func (m *MockUpgrade) AddStat(ctx context.Context, weaponID, statID string) (string, error) {
	args := m.Called(ctx, weaponID, statID)
	return args.String(0), args.Error(1)
}

func (m *MockUpgrade) RemoveStat(ctx context.Context, weaponStatID string) error {
	args := m.Called(ctx, weaponStatID)
	return args.Error(0)
}
