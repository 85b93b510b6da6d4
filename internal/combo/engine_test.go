package combo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

func newTestEngine(t *testing.T, tree *domain.PlantedTree) *Engine {
	t.Helper()
	e := NewEngine(DefaultConfig())
	e.ReplaceItem(tree)
	return e
}

func longTree(id string) *domain.PlantedTree {
	tree := treeSpanning(id, 0, 3600, 0)
	return &tree
}

func tapAt(t *testing.T, e *Engine, sec int) TapResult {
	t.Helper()
	res, err := e.RegisterTap(at(sec))
	require.NoError(t, err)
	return res
}

func TestRegisterTap_Coalesces(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))

	for _, sec := range []int{0, 1, 2, 3} {
		res := tapAt(t, e, sec)
		assert.Nil(t, res.Flush)
		assert.Equal(t, at(sec+5), res.Deadline, "every tap pushes the deadline out")
	}

	assert.Nil(t, e.FireDue(at(7)), "no submission before the last tap's window closes")
	assert.Nil(t, e.FireDue(at(8).Add(-time.Millisecond)))

	b := e.FireDue(at(8))
	require.NotNil(t, b)
	assert.Equal(t, "t1", b.TreeID)
	assert.Equal(t, 4, b.Clicks)
	assert.Equal(t, 4, b.ReductionSeconds)
	assert.False(t, e.Session().Scheduled())
}

func TestRegisterTap_StaleTimerIgnored(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))

	first := tapAt(t, e, 0)
	second := tapAt(t, e, 3)
	assert.Greater(t, second.Generation, first.Generation)

	// the timer armed by the first tap fires at its own deadline
	assert.Nil(t, e.FireDue(first.Deadline))
	assert.NotNil(t, e.FireDue(second.Deadline))
}

func TestRegisterTap_PredictsReduction(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))

	var res TapResult
	for i := range 12 {
		res = tapAt(t, e, i)
	}

	assert.Equal(t, 12, res.Clicks)
	assert.Equal(t, TimeReduction(12), res.PendingReduction)
	assert.NotEmpty(t, res.Effect.ID)
	assert.Equal(t, at(11).Add(DefaultEffectLifetime), res.Effect.ExpiresAt)

	cd, ok := e.Countdown(at(11))
	require.True(t, ok)
	assert.Equal(t, int64(3600-11-TimeReduction(12)), cd.RemainingSeconds)
}

func TestRegisterTap_ShortCircuitsWhenFullyGrown(t *testing.T) {
	tree := treeSpanning("t1", 0, 10, 0)
	e := newTestEngine(t, &tree)

	for range 9 {
		res := tapAt(t, e, 0)
		require.Nil(t, res.Flush)
	}

	res := tapAt(t, e, 0)
	require.NotNil(t, res.Flush, "the tap that covers the whole grow time submits at once")
	assert.Equal(t, 10, res.Flush.Clicks)
	assert.Equal(t, 11, res.Flush.ReductionSeconds)
	assert.True(t, res.Deadline.IsZero(), "short circuit cancels the debounce")

	_, err := e.RegisterTap(at(0))
	assert.ErrorIs(t, err, domain.ErrTapWhileReady)
}

func TestRegisterTap_ShortCircuitCountsConfirmedReduction(t *testing.T) {
	tree := treeSpanning("t1", 0, 100, 98)
	e := newTestEngine(t, &tree)

	assert.Nil(t, tapAt(t, e, 0).Flush)
	assert.NotNil(t, tapAt(t, e, 0).Flush)
}

func TestRegisterTap_Rejections(t *testing.T) {
	t.Run("nothing planted", func(t *testing.T) {
		e := NewEngine(DefaultConfig())
		_, err := e.RegisterTap(at(0))
		assert.ErrorIs(t, err, domain.ErrNoPlantedTree)
	})

	t.Run("tree already grown", func(t *testing.T) {
		tree := treeSpanning("t1", 0, 100, 0)
		e := newTestEngine(t, &tree)

		_, err := e.RegisterTap(at(100))
		assert.ErrorIs(t, err, domain.ErrTapWhileReady)
		assert.Equal(t, 0, e.Session().Clicks)
		assert.False(t, e.Session().Scheduled())
	})
}

func TestReplaceItem_ResetsSession(t *testing.T) {
	e := newTestEngine(t, longTree("a"))
	for i := range 5 {
		tapAt(t, e, i)
	}
	before := e.Session()

	e.ReplaceItem(longTree("b"))

	s := e.Session()
	assert.Equal(t, 0, s.Clicks)
	assert.Equal(t, 0, s.PendingReduction())
	assert.False(t, s.Scheduled())
	assert.Greater(t, s.Generation, before.Generation)
	assert.Nil(t, e.FireDue(at(100)), "the replaced tree's deadline never fires")
	assert.Equal(t, "b", e.Tree().ID)
}

func TestReplaceItem_DiscardsInFlightOutcome(t *testing.T) {
	e := newTestEngine(t, longTree("a"))
	tapAt(t, e, 0)
	b := e.Flush(at(1))
	require.NotNil(t, b)

	e.ReplaceItem(longTree("b"))
	tapAt(t, e, 2)

	snapshot := longTree("a")
	snapshot.TimeReduced = 1
	assert.Nil(t, e.CompleteFlush(at(3), *b, snapshot, nil))
	assert.Equal(t, 1, e.Session().Clicks, "taps on the new tree survive the stale outcome")
	assert.Equal(t, "b", e.Tree().ID)
	assert.Equal(t, 0, e.Tree().TimeReduced)
}

func TestFlush_Idempotent(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	tapAt(t, e, 0)
	tapAt(t, e, 1)

	b := e.FireDue(at(6))
	require.NotNil(t, b)
	assert.Nil(t, e.FireDue(at(6)))
	assert.Nil(t, e.Flush(at(6)), "clicks already in flight are not taken again")

	snapshot := longTree("t1")
	snapshot.TimeReduced = b.ReductionSeconds
	assert.Nil(t, e.CompleteFlush(at(7), *b, snapshot, nil))
	assert.Nil(t, e.Flush(at(7)))
	assert.Nil(t, e.CompleteFlush(at(7), *b, snapshot, nil), "duplicate completion is ignored")

	assert.Equal(t, 0, e.Session().Clicks)
	assert.Equal(t, 2, e.Tree().TimeReduced)
	assert.False(t, e.InFlight())
}

func TestFlush_EmptySession(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	assert.Nil(t, e.Flush(at(0)))
	assert.Nil(t, e.FireDue(at(0)))
}

func TestCompleteFlush_Success(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	for i := range 3 {
		tapAt(t, e, i)
	}
	b := e.Flush(at(3))
	require.NotNil(t, b)

	snapshot := longTree("t1")
	snapshot.TimeReduced = 3
	next := e.CompleteFlush(at(4), *b, snapshot, nil)

	assert.Nil(t, next)
	assert.Equal(t, 0, e.Session().Clicks)
	assert.False(t, e.Session().Scheduled())

	cd, ok := e.Countdown(at(4))
	require.True(t, ok)
	assert.Equal(t, int64(3600-4-3), cd.RemainingSeconds, "confirmed reduction replaces the prediction")
}

func TestCompleteFlush_FailureKeepsPrediction(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	for i := range 4 {
		tapAt(t, e, i)
	}
	b := e.FireDue(at(8))
	require.NotNil(t, b)

	next := e.CompleteFlush(at(9), *b, nil, errors.New("boom"))

	assert.Nil(t, next)
	assert.Equal(t, 4, e.Session().Clicks)
	assert.Equal(t, 4, e.Session().PendingReduction())
	assert.False(t, e.Session().Scheduled(), "no automatic retry by default")
	assert.False(t, e.InFlight())

	res := tapAt(t, e, 10)
	assert.Equal(t, 5, res.Clicks, "the next tap resumes the unconfirmed combo")
	b2 := e.FireDue(res.Deadline)
	require.NotNil(t, b2)
	assert.Equal(t, 5, b2.Clicks)
}

func TestCompleteFlush_OptInRetry(t *testing.T) {
	e := NewEngine(Config{FlushDelay: 5 * time.Second, FlushRetries: 1})
	e.ReplaceItem(longTree("t1"))
	tapAt(t, e, 0)

	b := e.FireDue(at(5))
	require.NotNil(t, b)
	e.CompleteFlush(at(6), *b, nil, errors.New("boom"))
	assert.Equal(t, at(11), e.Session().Deadline)

	b2 := e.FireDue(at(11))
	require.NotNil(t, b2)
	e.CompleteFlush(at(12), *b2, nil, errors.New("boom"))
	assert.False(t, e.Session().Scheduled(), "retries are bounded")
}

func TestCompleteFlush_TapsDuringFlight(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	tapAt(t, e, 0)
	tapAt(t, e, 1)
	b := e.FireDue(at(6))
	require.NotNil(t, b)

	res := tapAt(t, e, 7)
	assert.Equal(t, 3, res.Clicks)

	snapshot := longTree("t1")
	snapshot.TimeReduced = 2
	assert.Nil(t, e.CompleteFlush(at(8), *b, snapshot, nil))

	s := e.Session()
	assert.Equal(t, 1, s.Clicks, "only the submitted clicks are settled")
	assert.True(t, s.Scheduled())

	b2 := e.FireDue(s.Deadline)
	require.NotNil(t, b2)
	assert.Equal(t, 1, b2.Clicks)
}

func TestCompleteFlush_DeferredFlushRunsNext(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	tapAt(t, e, 0)
	b := e.FireDue(at(5))
	require.NotNil(t, b)

	res := tapAt(t, e, 6)
	assert.Nil(t, e.FireDue(res.Deadline), "only one batch is in flight at a time")

	snapshot := longTree("t1")
	snapshot.TimeReduced = 1
	next := e.CompleteFlush(at(12), *b, snapshot, nil)
	require.NotNil(t, next)
	assert.Equal(t, 1, next.Clicks)
	assert.True(t, e.InFlight())
}

func TestApplySnapshot(t *testing.T) {
	t.Run("same tree keeps the combo", func(t *testing.T) {
		e := newTestEngine(t, longTree("t1"))
		tapAt(t, e, 0)

		snapshot := longTree("t1")
		snapshot.TimeReduced = 30
		e.ApplySnapshot(snapshot)

		assert.Equal(t, 1, e.Session().Clicks)
		assert.True(t, e.Session().Scheduled())
		assert.Equal(t, 30, e.Tree().TimeReduced)
	})

	t.Run("different tree resets", func(t *testing.T) {
		e := newTestEngine(t, longTree("t1"))
		tapAt(t, e, 0)

		e.ApplySnapshot(longTree("t2"))

		assert.Equal(t, 0, e.Session().Clicks)
		assert.Equal(t, "t2", e.Tree().ID)
	})

	t.Run("empty slot clears", func(t *testing.T) {
		e := newTestEngine(t, longTree("t1"))
		e.ApplySnapshot(nil)

		assert.Nil(t, e.Tree())
		assert.Equal(t, domain.PhaseEmpty, e.Phase(at(0)))
	})
}

func TestPhase(t *testing.T) {
	tree := treeSpanning("t1", 0, 100, 0)
	e := NewEngine(DefaultConfig())

	assert.Equal(t, domain.PhaseEmpty, e.Phase(at(0)))

	e.ReplaceItem(&tree)
	assert.Equal(t, domain.PhaseGrowing, e.Phase(at(99)))
	assert.Equal(t, domain.PhaseReady, e.Phase(at(100)))
}

func TestFrame(t *testing.T) {
	tree := longTree("t1")
	tree.Quality = domain.QualityGolden
	e := newTestEngine(t, tree)
	for range 10 {
		tapAt(t, e, 0)
	}

	f := e.Frame(at(0))

	assert.Equal(t, "t1", f.TreeID)
	assert.Equal(t, domain.PhaseGrowing, f.Phase)
	assert.Equal(t, 10, f.ClickCount)
	assert.Equal(t, 11, f.PendingReduction)
	assert.Equal(t, int64(3589), f.RemainingSeconds)
	assert.Equal(t, "59m 49s", f.RemainingText)
	assert.Equal(t, "×2", f.ComboMultiplier)
	assert.False(t, f.FlushInFlight)
	assert.Equal(t, domain.QualityGolden, f.Quality)
	assert.Equal(t, "#ffd700", f.QualityColor)
	assert.Equal(t, 1, f.GrowthStage)

	empty := NewEngine(DefaultConfig()).Frame(at(0))
	assert.Equal(t, domain.PhaseEmpty, empty.Phase)
}

func TestCompleteFlush_WithoutSnapshotSettlesLocally(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	for i := range 10 {
		tapAt(t, e, i)
	}
	b := e.Flush(at(10))
	require.NotNil(t, b)

	e.CompleteFlush(at(11), *b, nil, nil)

	assert.Equal(t, 11, e.Tree().TimeReduced)
	assert.Equal(t, 0, e.Session().PendingReduction())
}

func TestPendingBatch(t *testing.T) {
	e := newTestEngine(t, longTree("t1"))
	assert.Nil(t, e.PendingBatch())

	tapAt(t, e, 0)
	b := e.Flush(at(1))
	require.NotNil(t, b)

	got := e.PendingBatch()
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, 1, got.Clicks)

	e.CompleteFlush(at(2), *got, nil, errors.New("dropped"))
	assert.Nil(t, e.PendingBatch())
	assert.Equal(t, 1, e.Session().Clicks, "failed batch keeps its clicks")
}
