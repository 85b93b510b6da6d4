package combo

import (
	"time"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// Countdown is the display state of a growing tree at one instant.
// It is derived on every tick and never stored.
type Countdown struct {
	AdjustedEnd      time.Time
	RemainingSeconds int64
	ProgressPercent  float64
	IsReady          bool
}

// Derive computes the countdown for a tree given the engine's unconfirmed
// reduction. The server's TimeReduced and the pending reduction are both
// subtracted from the natural end time.
func Derive(tree domain.PlantedTree, pendingReduction int, now time.Time) Countdown {
	start := tree.Start()
	reduction := time.Duration(tree.TimeReduced+pendingReduction) * time.Second
	adjustedEnd := tree.End().Add(-reduction)

	var remaining int64
	if left := adjustedEnd.Sub(now); left > 0 {
		remaining = int64(left / time.Second)
	}

	progress := 100.0
	if total := adjustedEnd.Sub(start); total > 0 {
		progress = float64(now.Sub(start)) / float64(total) * 100
		progress = max(0, min(100, progress))
	}

	return Countdown{
		AdjustedEnd:      adjustedEnd,
		RemainingSeconds: remaining,
		ProgressPercent:  progress,
		IsReady:          remaining == 0,
	}
}

// fullyReduced reports whether the combined reduction already covers the
// tree's whole natural grow duration.
func fullyReduced(tree domain.PlantedTree, pendingReduction int) bool {
	total := time.Duration(tree.TimeReduced+pendingReduction) * time.Second
	return total >= tree.GrowDuration()
}
