package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleGarden_Go/internal/combo"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/garden"
)

// MockGardenService implements garden.Service for testing
type MockGardenService struct {
	mock.Mock
}

func (m *MockGardenService) Start() { m.Called() }

func (m *MockGardenService) Load(ctx context.Context) (*domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockGardenService) Tap(ctx context.Context) (combo.TapResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(combo.TapResult), args.Error(1)
}

func (m *MockGardenService) Plant(ctx context.Context, seedID string, slotIndex int) (*domain.PlantedTree, error) {
	args := m.Called(ctx, seedID, slotIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantedTree), args.Error(1)
}

func (m *MockGardenService) Sell(ctx context.Context) (*domain.SellResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResult), args.Error(1)
}

func (m *MockGardenService) Refresh(ctx context.Context) (*domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockGardenService) State(ctx context.Context) garden.State {
	args := m.Called(ctx)
	return args.Get(0).(garden.State)
}

func (m *MockGardenService) Seeds(ctx context.Context) ([]garden.SeedOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]garden.SeedOption), args.Error(1)
}

func (m *MockGardenService) Locations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockGardenService) AdStatus(ctx context.Context) (*domain.AdStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdStatus), args.Error(1)
}

func (m *MockGardenService) ClaimAdReward(ctx context.Context, boost domain.BoostType) (*domain.AdReward, error) {
	args := m.Called(ctx, boost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdReward), args.Error(1)
}

func (m *MockGardenService) SignOut(ctx context.Context) { m.Called(ctx) }

func (m *MockGardenService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
