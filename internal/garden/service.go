// Package garden binds the combo engine to the backend, the flush timer and
// the display sink.
package garden

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/IdleGarden_Go/internal/combo"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/event"
	"github.com/osse101/IdleGarden_Go/internal/format"
	"github.com/osse101/IdleGarden_Go/internal/logger"
	"github.com/osse101/IdleGarden_Go/internal/scheduler"
	"github.com/osse101/IdleGarden_Go/internal/storage"
	"github.com/osse101/IdleGarden_Go/internal/worker"
)

// Backend is the slice of the game API the garden drives
type Backend interface {
	combo.Submitter
	GameState(ctx context.Context) (*domain.GameState, error)
	User(ctx context.Context) (*domain.User, error)
	PlantTree(ctx context.Context, seedID string, slotIndex int) (*domain.PlantedTree, error)
	SellTree(ctx context.Context, plantedTreeID string) (*domain.SellResult, error)
	AdStatus(ctx context.Context) (*domain.AdStatus, error)
	ClaimAdReward(ctx context.Context, boost domain.BoostType) (*domain.AdReward, error)
}

// Catalog serves seeds and locations
type Catalog interface {
	Seeds(ctx context.Context) ([]domain.Seed, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	SeedByID(ctx context.Context, id string) (*domain.Seed, error)
	LocationByCode(ctx context.Context, code string) (*domain.Location, error)
}

// DisplaySink receives one frame per display tick
type DisplaySink interface {
	PublishFrame(frame domain.DisplayFrame)
}

// State is the full client view of the slot
type State struct {
	Frame    domain.DisplayFrame `json:"frame"`
	User     *domain.User        `json:"user,omitempty"`
	Tree     *domain.PlantedTree `json:"tree,omitempty"`
	Location *domain.Location    `json:"location,omitempty"`
	TreeIcon string              `json:"tree_icon,omitempty"`
}

// SeedOption is a catalog seed annotated for the current user
type SeedOption struct {
	domain.Seed
	Unlocked     bool   `json:"unlocked"`
	GrowTimeText string `json:"grow_time_text"`
}

// Service defines the garden operations
type Service interface {
	Start()
	Load(ctx context.Context) (*domain.GameState, error)
	Tap(ctx context.Context) (combo.TapResult, error)
	Plant(ctx context.Context, seedID string, slotIndex int) (*domain.PlantedTree, error)
	Sell(ctx context.Context) (*domain.SellResult, error)
	Refresh(ctx context.Context) (*domain.GameState, error)
	State(ctx context.Context) State
	Seeds(ctx context.Context) ([]SeedOption, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	AdStatus(ctx context.Context) (*domain.AdStatus, error)
	ClaimAdReward(ctx context.Context, boost domain.BoostType) (*domain.AdReward, error)
	SignOut(ctx context.Context)
	Shutdown(ctx context.Context) error
}

// Config tunes the garden
type Config struct {
	Combo       combo.Config
	DisplayTick time.Duration
}

// Deps are the garden collaborators. Store, Bus and Sink are optional.
type Deps struct {
	Backend Backend
	Catalog Catalog
	Store   storage.Store
	Bus     event.Bus
	Sink    DisplaySink
	Clock   clockwork.Clock
}

type service struct {
	backend Backend
	catalog Catalog
	store   storage.Store
	bus     event.Bus
	sink    DisplaySink
	clock   clockwork.Clock
	cfg     Config

	engine *combo.Engine

	flushPool   *worker.Pool
	displayPool *worker.Pool
	ticker      *scheduler.Scheduler

	timerMu  sync.Mutex
	timer    clockwork.Timer
	timerGen uint64 // session generation the live timer was armed for

	userMu sync.RWMutex
	user   *domain.User

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewService creates a garden service. Call Start before tapping.
func NewService(cfg Config, deps Deps) Service {
	if cfg.DisplayTick <= 0 {
		cfg.DisplayTick = DefaultDisplayTick
	}
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	displayPool := worker.NewPool(displayWorkers, displayQueueSize)
	return &service{
		backend:     deps.Backend,
		catalog:     deps.Catalog,
		store:       deps.Store,
		bus:         deps.Bus,
		sink:        deps.Sink,
		clock:       clock,
		cfg:         cfg,
		engine:      combo.NewEngine(cfg.Combo),
		flushPool:   worker.NewPool(flushWorkers, flushQueueSize),
		displayPool: displayPool,
		ticker:      scheduler.New(displayPool, clock),
	}
}

// Start launches the flush worker and the display ticker
func (s *service) Start() {
	s.startOnce.Do(func() {
		s.flushPool.Start()
		s.displayPool.Start()
		if s.sink != nil {
			s.ticker.Schedule(s.cfg.DisplayTick, worker.JobFunc(s.publishFrame))
		}
	})
}

// Load fetches the game state and catalog and installs the slot-0 tree
func (s *service) Load(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	state, err := s.backend.GameState(ctx)
	if err != nil {
		return nil, err
	}
	s.setUser(ctx, state.User)

	if _, err := s.catalog.Seeds(ctx); err != nil {
		return nil, err
	}
	if _, err := s.catalog.Locations(ctx); err != nil {
		return nil, err
	}

	tree := primaryTree(state.PlantedTrees)
	s.engine.ReplaceItem(tree)
	s.syncTimer(ctx)

	log.Info(LogMsgLoaded, "user_id", state.User.ID, "planted", len(state.PlantedTrees))
	s.publish(ctx, event.NewTreeRefreshedEvent(treeID(tree), s.clock.Now()))
	return state, nil
}

// State returns the live frame with the cached user and tree, the user's
// current location and the tree icon for its growth stage. Catalog misses
// leave those fields empty.
func (s *service) State(ctx context.Context) State {
	log := logger.FromContext(ctx)
	st := State{
		Frame: s.engine.Frame(s.clock.Now()),
		User:  s.currentUser(),
		Tree:  s.engine.Tree(),
	}

	if st.User != nil && st.User.CurrentLocation != "" {
		loc, err := s.catalog.LocationByCode(ctx, st.User.CurrentLocation)
		if err != nil {
			log.Debug(LogMsgCatalogMiss, "location", st.User.CurrentLocation, "error", err)
		} else {
			st.Location = loc
		}
	}
	if st.Tree != nil && st.Tree.SeedID != "" {
		seed, err := s.catalog.SeedByID(ctx, st.Tree.SeedID)
		if err != nil {
			log.Debug(LogMsgCatalogMiss, "seed_id", st.Tree.SeedID, "error", err)
		} else {
			st.TreeIcon = format.TreeIcon(seed.Icon, st.Frame.ProgressPercent)
		}
	}
	return st
}

// Shutdown stops the timer and the workers, then submits any clicks still
// waiting out their debounce window, including a batch the flush worker never
// picked up
func (s *service) Shutdown(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		log := logger.FromContext(ctx)
		log.Info(LogMsgShutdown)

		s.stopTimer()
		s.ticker.Stop()
		s.displayPool.Stop()
		s.flushPool.Stop()

		now := s.clock.Now()
		var final *combo.Batch
		// Still in flight once the pool is stopped means the job was queued but never ran
		if b := s.engine.PendingBatch(); b != nil {
			log.Warn(LogMsgFlushNotRun, "tree_id", b.TreeID, "batch_id", b.ID, "clicks", b.Clicks)
			final = s.engine.CompleteFlush(now, *b, nil, errFlushPoolStopped)
		}
		if final == nil {
			final = s.engine.Flush(now)
		}
		if final != nil {
			log.Info(LogMsgFinalFlush, "tree_id", final.TreeID, "clicks", final.Clicks)
			err = s.submitNow(ctx, *final)
		}
	})
	return err
}

// SignOut empties the slot and forgets the cached user. Clicks not yet
// submitted are discarded with the session that owned them.
func (s *service) SignOut(ctx context.Context) {
	s.stopTimer()
	s.engine.ReplaceItem(nil)

	s.userMu.Lock()
	s.user = nil
	s.userMu.Unlock()
	if s.store != nil {
		if err := s.store.RemoveUser(); err != nil {
			logger.FromContext(ctx).Warn(LogMsgUserCacheFailed, "error", err)
		}
	}

	logger.FromContext(ctx).Info(LogMsgSignedOut)
	s.publish(ctx, event.NewTreeRefreshedEvent("", s.clock.Now()))
}

func (s *service) publishFrame(ctx context.Context) error {
	s.sink.PublishFrame(s.engine.Frame(s.clock.Now()))
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) currentUser() *domain.User {
	s.userMu.RLock()
	defer s.userMu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *service) setUser(ctx context.Context, user domain.User) {
	s.userMu.Lock()
	s.user = &user
	s.userMu.Unlock()

	if s.store == nil {
		return
	}
	if err := s.store.SaveUser(user); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUserCacheFailed, "error", err)
	}
}

// refreshUser reloads the user after a mutation. Failure leaves the cached
// user in place.
func (s *service) refreshUser(ctx context.Context) {
	user, err := s.backend.User(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUserRefreshFailed, "error", err)
		return
	}
	s.setUser(ctx, *user)
}

// primaryTree picks the tree in the primary slot, falling back to the first
func primaryTree(trees []domain.PlantedTree) *domain.PlantedTree {
	if len(trees) == 0 {
		return nil
	}
	for i := range trees {
		if trees[i].SlotIndex == PrimarySlot {
			return &trees[i]
		}
	}
	return &trees[0]
}

func treeID(tree *domain.PlantedTree) string {
	if tree == nil {
		return ""
	}
	return tree.ID
}

var errFlushPoolStopped = errors.New("flush pool stopped")
