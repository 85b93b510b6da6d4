package garden

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/IdleGarden_Go/internal/combo"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/event"
	"github.com/osse101/IdleGarden_Go/internal/logger"
	"github.com/osse101/IdleGarden_Go/internal/metrics"
	"github.com/osse101/IdleGarden_Go/internal/worker"
)

// Tap registers one water tap. It never waits on the network: the batch is
// submitted by the flush worker once the debounce window closes, or right away
// when the tap fully grew the tree.
func (s *service) Tap(ctx context.Context) (combo.TapResult, error) {
	log := logger.FromContext(ctx)

	res, err := s.engine.RegisterTap(s.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPlantedTree):
			metrics.RecordTapRejected(metrics.ReasonNoTree)
		case errors.Is(err, domain.ErrTapWhileReady):
			metrics.RecordTapRejected(metrics.ReasonReady)
		}
		log.Debug(LogMsgTapRejected, "error", err)
		return res, err
	}

	s.armTimer(ctx, res.Deadline, res.Generation)
	if res.Flush != nil {
		log.Info(LogMsgShortCircuitFlush, "tree_id", res.Flush.TreeID, "clicks", res.Flush.Clicks)
		s.submit(ctx, *res.Flush)
	}

	s.publish(ctx, event.NewComboTapEvent(domain.ComboTapPayload{
		TreeID:           treeID(s.engine.Tree()),
		ClickCount:       res.Clicks,
		PendingReduction: res.PendingReduction,
		EffectID:         res.Effect.ID,
		EffectExpiresAt:  res.Effect.ExpiresAt,
	}, s.clock.Now()))

	return res, nil
}

// armTimer cancels the live flush timer and, for a non-zero deadline, sets a
// new one. Arming requests for an older generation than the live timer are
// ignored so concurrent taps cannot resurrect a superseded deadline.
func (s *service) armTimer(ctx context.Context, deadline time.Time, gen uint64) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if gen <= s.timerGen {
		return
	}
	s.timerGen = gen
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if deadline.IsZero() {
		return
	}

	wait := max(deadline.Sub(s.clock.Now()), 0)
	s.timer = s.clock.AfterFunc(wait, func() { s.onDeadline(gen) })
	logger.FromContext(ctx).Debug(LogMsgFlushArmed, "deadline", deadline, "generation", gen)
}

// syncTimer re-arms from the engine session after anything that may have
// moved the deadline
func (s *service) syncTimer(ctx context.Context) {
	sess := s.engine.Session()
	s.armTimer(ctx, sess.Deadline, sess.Generation)
}

func (s *service) stopTimer() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *service) onDeadline(gen uint64) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	s.timerMu.Lock()
	live := gen == s.timerGen
	if live {
		s.timer = nil
	}
	s.timerMu.Unlock()

	if !live {
		log.Debug(LogMsgFlushStale, "generation", gen)
		return
	}

	b := s.engine.FireDue(s.clock.Now())
	if b == nil {
		log.Debug(LogMsgFlushStale, "generation", gen)
		return
	}
	log.Debug(LogMsgFlushFired, "tree_id", b.TreeID, "clicks", b.Clicks)
	s.submit(ctx, *b)
}

// submit hands a batch to the flush worker
func (s *service) submit(ctx context.Context, b combo.Batch) {
	job := worker.JobFunc(func(jobCtx context.Context) error {
		// failures are logged and counted by submitNow
		_ = s.submitNow(jobCtx, b)
		return nil
	})
	if !s.flushPool.Enqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgFlushNotQueued, "tree_id", b.TreeID, "clicks", b.Clicks)
		s.engine.CompleteFlush(s.clock.Now(), b, nil, errFlushPoolStopped)
	}
}

// submitNow performs one submission attempt and applies its outcome
func (s *service) submitNow(ctx context.Context, b combo.Batch) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFlushSubmitting, "tree_id", b.TreeID, "batch_id", b.ID, "clicks", b.Clicks, "reduction", b.ReductionSeconds)

	start := s.clock.Now()
	res, err := s.backend.ClickTree(ctx, b.TreeID, b.Clicks, b.ReductionSeconds)
	metrics.FlushDuration.Observe(s.clock.Since(start).Seconds())

	payload := domain.ComboFlushPayload{
		TreeID:           b.TreeID,
		BatchID:          b.ID,
		Clicks:           b.Clicks,
		ReductionSeconds: b.ReductionSeconds,
	}

	var snapshot *domain.PlantedTree
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
		payload.Error = err.Error()
		log.Warn(LogMsgFlushFailed, "tree_id", b.TreeID, "batch_id", b.ID, "error", err)
	} else {
		if res.PlantedTree.ID != "" {
			snapshot = &res.PlantedTree
		}
		if res.User.ID != "" {
			s.setUser(ctx, res.User)
		}
		log.Info(LogMsgFlushSucceeded, "tree_id", b.TreeID, "batch_id", b.ID, "clicks_processed", res.ClicksProcessed)
	}

	next := s.engine.CompleteFlush(s.clock.Now(), b, snapshot, err)
	s.syncTimer(ctx)
	s.publish(ctx, event.NewComboFlushEvent(payload, s.clock.Now()))

	if next != nil {
		s.submit(ctx, *next)
	}
	return err
}
