package server

import (
	"context"
	"sync/atomic"

	"github.com/osse101/IdleGarden_Go/internal/combo"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/garden"
)

// stubGarden answers the routes exercised here; any other method panics
type stubGarden struct {
	garden.Service
	taps atomic.Int32
}

func (s *stubGarden) State(context.Context) garden.State {
	return garden.State{Frame: domain.DisplayFrame{Phase: domain.PhaseEmpty}}
}

func (s *stubGarden) Tap(context.Context) (combo.TapResult, error) {
	if s.taps.Add(1) > 1 {
		return combo.TapResult{}, domain.ErrNoPlantedTree
	}
	return combo.TapResult{Clicks: 1, PendingReduction: 1}, nil
}

type readyFunc func(ctx context.Context) error

func (f readyFunc) CheckHealth(ctx context.Context) error { return f(ctx) }
