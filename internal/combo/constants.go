package combo

import "time"

const (
	// DefaultFlushDelay is the debounce window between the last tap and submission
	DefaultFlushDelay = 5 * time.Second

	// DefaultEffectLifetime is how long a renderer shows a water drop
	DefaultEffectLifetime = time.Second
)

// Click tiers. A click's weight depends on its position in the combo.
const (
	tierOneLastClick = 9  // clicks 1-9 weigh 1
	tierTwoLastClick = 29 // clicks 10-29 weigh 2

	tierOneWeight   = 1
	tierTwoWeight   = 2
	tierThreeWeight = 3
)
