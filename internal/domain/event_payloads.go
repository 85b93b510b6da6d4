package domain

import "time"

// ComboTapPayload is published for each accepted tap
type ComboTapPayload struct {
	TreeID           string    `json:"tree_id"`
	ClickCount       int       `json:"click_count"`
	PendingReduction int       `json:"pending_reduction_seconds"`
	EffectID         string    `json:"effect_id"`
	EffectExpiresAt  time.Time `json:"effect_expires_at"`
}

// ComboFlushPayload describes the outcome of one batch submission
type ComboFlushPayload struct {
	TreeID           string `json:"tree_id"`
	BatchID          uint64 `json:"batch_id"`
	Clicks           int    `json:"clicks"`
	ReductionSeconds int    `json:"reduction_seconds"`
	Error            string `json:"error,omitempty"`
}

// TreePlantedPayload is published after a plant is confirmed
type TreePlantedPayload struct {
	TreeID    string  `json:"tree_id"`
	SeedID    string  `json:"seed_id"`
	SlotIndex int     `json:"slot_index"`
	Quality   Quality `json:"quality"`
}

// TreeSoldPayload is published after a sale is confirmed
type TreeSoldPayload struct {
	TreeID    string  `json:"tree_id"`
	SeedName  string  `json:"seed_name"`
	Quality   Quality `json:"quality"`
	SoldPrice int64   `json:"sold_price"`
	NewGold   int64   `json:"new_gold"`
}
