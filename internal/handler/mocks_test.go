package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/UpgradeForge_Go/internal/upgrade"
)

// MockUpgradeService mocks the upgrade.Service interface
type MockUpgradeService struct {
	mock.Mock
}

func (m *MockUpgradeService) Upgrade(ctx context.Context, player, weaponID string, itemIDs []string) (*upgrade.Result, error) {
	args := m.Called(ctx, player, weaponID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upgrade.Result), args.Error(1)
}

func (m *MockUpgradeService) GetWeaponStats(ctx context.Context, player, weaponID string) (*upgrade.WeaponView, error) {
	args := m.Called(ctx, player, weaponID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upgrade.WeaponView), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
