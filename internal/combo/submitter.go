package combo

import (
	"context"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// Submitter sends a batch of clicks to the backend. Implementations make a
// single attempt; retry policy belongs to the engine.
type Submitter interface {
	ClickTree(ctx context.Context, plantedTreeID string, clicks, timeReduction int) (*domain.ClickResult, error)
}
