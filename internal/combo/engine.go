package combo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/format"
)

// Config tunes the engine timings
type Config struct {
	FlushDelay     time.Duration
	EffectLifetime time.Duration
	// FlushRetries is how many times a failed batch is rescheduled. Zero keeps
	// the optimistic prediction on screen and waits for the next tap instead.
	FlushRetries int
}

// DefaultConfig returns the production timings
func DefaultConfig() Config {
	return Config{
		FlushDelay:     DefaultFlushDelay,
		EffectLifetime: DefaultEffectLifetime,
		FlushRetries:   0,
	}
}

// Batch is one submission of accumulated clicks for a tree
type Batch struct {
	ID               uint64
	TreeID           string
	Clicks           int
	ReductionSeconds int
	TakenAt          time.Time
	epoch            uint64
}

// Effect is a transient water-drop token. It has no bearing on combo state.
type Effect struct {
	ID        string
	ExpiresAt time.Time
}

// TapResult describes the state after an accepted tap
type TapResult struct {
	Clicks           int
	PendingReduction int
	Deadline         time.Time
	Generation       uint64
	Effect           Effect
	// Flush is set when the tap fully grew the tree and the batch must be
	// submitted now instead of waiting out the debounce window.
	Flush *Batch
}

// Engine owns the combo session for the single garden slot.
// All methods are safe for concurrent use; each call is one serialized event.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	tree    *domain.PlantedTree
	session Session
	epoch   uint64 // bumps whenever the tree is replaced

	nextBatchID uint64
	inFlight    *Batch
	deferred    bool // a flush came due while inFlight was outstanding
	retries     int
}

// NewEngine creates an engine with no tree planted
func NewEngine(cfg Config) *Engine {
	if cfg.FlushDelay <= 0 {
		cfg.FlushDelay = DefaultFlushDelay
	}
	if cfg.EffectLifetime <= 0 {
		cfg.EffectLifetime = DefaultEffectLifetime
	}
	if cfg.FlushRetries < 0 {
		cfg.FlushRetries = 0
	}
	return &Engine{cfg: cfg}
}

// RegisterTap records one water tap at now.
// It rejects taps when nothing is planted or the tree is already grown, and it
// never performs I/O: the caller submits TapResult.Flush when it is set.
func (e *Engine) RegisterTap(now time.Time) (TapResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tree == nil {
		return TapResult{}, domain.ErrNoPlantedTree
	}
	if Derive(*e.tree, e.session.PendingReduction(), now).IsReady {
		return TapResult{}, domain.ErrTapWhileReady
	}

	e.session.Clicks++
	pending := e.session.PendingReduction()
	e.session.schedule(now.Add(e.cfg.FlushDelay))

	res := TapResult{
		Clicks:           e.session.Clicks,
		PendingReduction: pending,
		Effect: Effect{
			ID:        uuid.NewString(),
			ExpiresAt: now.Add(e.cfg.EffectLifetime),
		},
	}

	if fullyReduced(*e.tree, pending) {
		e.session.cancel()
		res.Flush = e.takeLocked(now)
	}

	res.Deadline = e.session.Deadline
	res.Generation = e.session.Generation
	return res, nil
}

// Flush takes the pending clicks as a batch immediately, cancelling any
// scheduled deadline. It returns nil when there is nothing new to submit,
// so calling it twice never submits the same clicks twice.
func (e *Engine) Flush(now time.Time) *Batch {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.Clicks == 0 {
		return nil
	}
	e.session.cancel()
	return e.takeLocked(now)
}

// FireDue takes a batch only if the scheduled deadline has passed.
// A stale timer (deadline moved later by a newer tap) gets nil.
func (e *Engine) FireDue(now time.Time) *Batch {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.session.Scheduled() || now.Before(e.session.Deadline) {
		return nil
	}
	e.session.cancel()
	return e.takeLocked(now)
}

// CompleteFlush applies the outcome of submitting b. snapshot is the
// authoritative tree returned by the backend, if any. The returned batch, when
// non-nil, came due while b was in flight and must be submitted next.
func (e *Engine) CompleteFlush(now time.Time, b Batch, snapshot *domain.PlantedTree, err error) *Batch {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inFlight == nil || e.inFlight.ID != b.ID {
		return nil
	}
	e.inFlight = nil

	if b.epoch != e.epoch {
		e.deferred = false
		return nil
	}

	if err == nil {
		e.retries = 0
		e.session.Clicks = max(0, e.session.Clicks-b.Clicks)
		if e.session.Clicks == 0 {
			e.session.cancel()
			e.deferred = false
		}
		switch {
		case e.tree == nil:
		case snapshot != nil && snapshot.ID == e.tree.ID:
			t := *snapshot
			e.tree = &t
		default:
			// no usable snapshot: settle the submitted reduction locally
			e.tree.TimeReduced += b.ReductionSeconds
		}
	} else if !e.session.Scheduled() && !e.deferred && e.retries < e.cfg.FlushRetries {
		e.retries++
		e.session.schedule(now.Add(e.cfg.FlushDelay))
	}

	if e.deferred {
		e.deferred = false
		return e.takeLocked(now)
	}
	return nil
}

// ReplaceItem installs a new tree (or clears the slot with nil). The session
// and any scheduled flush are discarded unconditionally; the outcome of a
// batch still in flight for the previous tree will be ignored.
func (e *Engine) ReplaceItem(tree *domain.PlantedTree) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.replaceLocked(tree)
}

// ApplySnapshot refreshes the tree from an authoritative snapshot. The same
// tree keeps its session; a different tree (or nil) is a replacement.
func (e *Engine) ApplySnapshot(tree *domain.PlantedTree) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tree == nil || e.tree == nil || tree.ID != e.tree.ID {
		e.replaceLocked(tree)
		return
	}
	t := *tree
	e.tree = &t
}

// Countdown derives the live countdown. ok is false when nothing is planted.
func (e *Engine) Countdown(now time.Time) (cd Countdown, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tree == nil {
		return Countdown{}, false
	}
	return Derive(*e.tree, e.session.PendingReduction(), now), true
}

// Phase returns the slot state machine position at now
func (e *Engine) Phase(now time.Time) domain.Phase {
	cd, ok := e.Countdown(now)
	switch {
	case !ok:
		return domain.PhaseEmpty
	case cd.IsReady:
		return domain.PhaseReady
	default:
		return domain.PhaseGrowing
	}
}

// Frame builds the display-sink tuple for now
func (e *Engine) Frame(now time.Time) domain.DisplayFrame {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tree == nil {
		return domain.DisplayFrame{Phase: domain.PhaseEmpty}
	}

	pending := e.session.PendingReduction()
	cd := Derive(*e.tree, pending, now)
	phase := domain.PhaseGrowing
	if cd.IsReady {
		phase = domain.PhaseReady
	}

	frame := domain.DisplayFrame{
		TreeID:           e.tree.ID,
		Phase:            phase,
		RemainingSeconds: cd.RemainingSeconds,
		ProgressPercent:  cd.ProgressPercent,
		IsReady:          cd.IsReady,
		ClickCount:       e.session.Clicks,
		PendingReduction: pending,
		RemainingText:    format.Time(cd.RemainingSeconds),
		FlushInFlight:    e.inFlight != nil,
		Quality:          e.tree.Quality,
		QualityColor:     format.QualityColor(e.tree.Quality),
		GrowthStage:      format.GrowthStage(cd.ProgressPercent),
	}
	if e.session.Clicks > 0 {
		frame.ComboMultiplier = format.ComboMultiplier(CurrentWeight(e.session.Clicks))
	}
	return frame
}

// Session returns a copy of the current combo session
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Tree returns a copy of the current tree, or nil when the slot is empty
func (e *Engine) Tree() *domain.PlantedTree {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tree == nil {
		return nil
	}
	t := *e.tree
	return &t
}

// InFlight reports whether a batch is awaiting its submission outcome
func (e *Engine) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight != nil
}

// PendingBatch returns a copy of the batch awaiting its outcome, or nil
func (e *Engine) PendingBatch() *Batch {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inFlight == nil {
		return nil
	}
	b := *e.inFlight
	return &b
}

// takeLocked moves the session clicks into a new in-flight batch.
// Only one batch is outstanding at a time; if one already is, the flush is
// deferred until it completes, unless no click arrived since it was taken.
func (e *Engine) takeLocked(now time.Time) *Batch {
	if e.tree == nil || e.session.Clicks == 0 {
		return nil
	}
	if e.inFlight != nil {
		if e.session.Clicks > e.inFlight.Clicks {
			e.deferred = true
		}
		return nil
	}

	e.nextBatchID++
	b := Batch{
		ID:               e.nextBatchID,
		TreeID:           e.tree.ID,
		Clicks:           e.session.Clicks,
		ReductionSeconds: e.session.PendingReduction(),
		TakenAt:          now,
		epoch:            e.epoch,
	}
	e.inFlight = &b
	out := b
	return &out
}

func (e *Engine) replaceLocked(tree *domain.PlantedTree) {
	if tree == nil {
		e.tree = nil
	} else {
		t := *tree
		e.tree = &t
	}
	e.session = Session{Generation: e.session.Generation + 1}
	e.epoch++
	e.inFlight = nil
	e.deferred = false
	e.retries = 0
}
