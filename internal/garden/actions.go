package garden

import (
	"context"
	"fmt"

	"github.com/osse101/IdleGarden_Go/internal/catalog"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/event"
	"github.com/osse101/IdleGarden_Go/internal/format"
	"github.com/osse101/IdleGarden_Go/internal/logger"
)

// Plant puts a seed in the slot. The slot must be empty and the seed unlocked
// for the cached user.
func (s *service) Plant(ctx context.Context, seedID string, slotIndex int) (*domain.PlantedTree, error) {
	log := logger.FromContext(ctx)

	if slotIndex < 0 {
		return nil, fmt.Errorf("%w: slot index %d", domain.ErrInvalidInput, slotIndex)
	}
	if s.engine.Tree() != nil {
		return nil, domain.ErrSlotOccupied
	}

	seed, err := s.catalog.SeedByID(ctx, seedID)
	if err != nil {
		return nil, err
	}
	if user := s.currentUser(); user != nil && !catalog.IsSeedUnlocked(*seed, *user) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSeedLocked, seed.Name)
	}

	tree, err := s.backend.PlantTree(ctx, seedID, slotIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to plant tree: %w", err)
	}

	s.engine.ReplaceItem(tree)
	s.syncTimer(ctx)
	s.refreshUser(ctx)

	log.Info(LogMsgTreePlanted, "tree_id", tree.ID, "seed", seed.Name, "quality", tree.Quality)
	s.publish(ctx, event.NewTreePlantedEvent(domain.TreePlantedPayload{
		TreeID:    tree.ID,
		SeedID:    seedID,
		SlotIndex: slotIndex,
		Quality:   tree.Quality,
	}, s.clock.Now()))

	out := *tree
	return &out, nil
}

// Sell harvests a grown tree. A tree still growing returns ErrNotReady.
func (s *service) Sell(ctx context.Context) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)

	tree := s.engine.Tree()
	if tree == nil {
		return nil, domain.ErrNoPlantedTree
	}
	if s.engine.Phase(s.clock.Now()) != domain.PhaseReady {
		return nil, domain.ErrNotReady
	}

	res, err := s.backend.SellTree(ctx, tree.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sell tree: %w", err)
	}

	s.engine.ReplaceItem(nil)
	s.syncTimer(ctx)
	s.applySale(ctx, res)
	s.refreshUser(ctx)

	log.Info(LogMsgTreeSold, "tree_id", tree.ID, "seed", res.SeedName, "price", res.SoldPrice)
	s.publish(ctx, event.NewTreeSoldEvent(domain.TreeSoldPayload{
		TreeID:    tree.ID,
		SeedName:  res.SeedName,
		Quality:   res.Quality,
		SoldPrice: res.SoldPrice,
		NewGold:   res.NewGold,
	}, s.clock.Now()))

	return res, nil
}

// applySale patches the cached user with the sale totals so the view is
// right even if the follow-up user fetch fails
func (s *service) applySale(ctx context.Context, res *domain.SellResult) {
	user := s.currentUser()
	if user == nil {
		return
	}
	user.Gold = res.NewGold
	user.TotalEarnings = res.TotalEarnings
	user.TotalTreesSold = res.TotalTreesSold
	s.setUser(ctx, *user)
}

// Refresh re-reads the game state. The same tree keeps its combo; a
// different one replaces it.
func (s *service) Refresh(ctx context.Context) (*domain.GameState, error) {
	state, err := s.backend.GameState(ctx)
	if err != nil {
		return nil, err
	}
	s.setUser(ctx, state.User)

	tree := primaryTree(state.PlantedTrees)
	s.engine.ApplySnapshot(tree)
	s.syncTimer(ctx)

	logger.FromContext(ctx).Debug(LogMsgRefreshed, "tree_id", treeID(tree))
	s.publish(ctx, event.NewTreeRefreshedEvent(treeID(tree), s.clock.Now()))
	return state, nil
}

// Seeds lists the catalog with each seed's unlock state for the cached user
func (s *service) Seeds(ctx context.Context) ([]SeedOption, error) {
	seeds, err := s.catalog.Seeds(ctx)
	if err != nil {
		return nil, err
	}

	user := s.currentUser()
	out := make([]SeedOption, 0, len(seeds))
	for _, seed := range seeds {
		out = append(out, SeedOption{
			Seed:         seed,
			Unlocked:     user != nil && catalog.IsSeedUnlocked(seed, *user),
			GrowTimeText: format.ShortTime(int64(seed.BaseGrowTime)),
		})
	}
	return out, nil
}

func (s *service) Locations(ctx context.Context) ([]domain.Location, error) {
	return s.catalog.Locations(ctx)
}

func (s *service) AdStatus(ctx context.Context) (*domain.AdStatus, error) {
	return s.backend.AdStatus(ctx)
}

// ClaimAdReward redeems a watched ad. A time boost moves the tree's end, so
// the garden is refreshed afterwards.
func (s *service) ClaimAdReward(ctx context.Context, boost domain.BoostType) (*domain.AdReward, error) {
	switch boost {
	case domain.BoostTime, domain.BoostSell:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBoostType, boost)
	}

	reward, err := s.backend.ClaimAdReward(ctx, boost)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgAdRewardClaimed, "boost", reward.BoostType, "value", reward.BoostValue)

	if _, err := s.Refresh(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUserRefreshFailed, "error", err)
	}
	return reward, nil
}
