package garden

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// MockBackend implements Backend for testing
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ClickTree(ctx context.Context, plantedTreeID string, clicks, timeReduction int) (*domain.ClickResult, error) {
	args := m.Called(ctx, plantedTreeID, clicks, timeReduction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClickResult), args.Error(1)
}

func (m *MockBackend) GameState(ctx context.Context) (*domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockBackend) User(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) PlantTree(ctx context.Context, seedID string, slotIndex int) (*domain.PlantedTree, error) {
	args := m.Called(ctx, seedID, slotIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantedTree), args.Error(1)
}

func (m *MockBackend) SellTree(ctx context.Context, plantedTreeID string) (*domain.SellResult, error) {
	args := m.Called(ctx, plantedTreeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResult), args.Error(1)
}

func (m *MockBackend) AdStatus(ctx context.Context) (*domain.AdStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdStatus), args.Error(1)
}

func (m *MockBackend) ClaimAdReward(ctx context.Context, boost domain.BoostType) (*domain.AdReward, error) {
	args := m.Called(ctx, boost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdReward), args.Error(1)
}

// MockCatalog implements Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Seeds(ctx context.Context) ([]domain.Seed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *MockCatalog) Locations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockCatalog) SeedByID(ctx context.Context, id string) (*domain.Seed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockCatalog) LocationByCode(ctx context.Context, code string) (*domain.Location, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// recordingSink keeps every frame it receives
type recordingSink struct {
	mu     sync.Mutex
	frames []domain.DisplayFrame
}

func (r *recordingSink) PublishFrame(frame domain.DisplayFrame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *recordingSink) last() domain.DisplayFrame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}
