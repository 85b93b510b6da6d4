package domain

// Phase is the state of the single garden slot
type Phase string

const (
	PhaseEmpty   Phase = "empty"
	PhaseGrowing Phase = "growing"
	PhaseReady   Phase = "ready"
)

// DisplayFrame is what the garden pushes to renderers once per tick.
// It is purely observational; nothing flows back from it into the engine.
type DisplayFrame struct {
	TreeID           string  `json:"tree_id,omitempty"`
	Phase            Phase   `json:"phase"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	ProgressPercent  float64 `json:"progress_percent"`
	IsReady          bool    `json:"is_ready"`
	ClickCount       int     `json:"click_count"`
	PendingReduction int     `json:"pending_reduction_seconds"`
	ComboMultiplier  string  `json:"combo_multiplier,omitempty"`
	RemainingText    string  `json:"remaining_text,omitempty"`
	FlushInFlight    bool    `json:"flush_in_flight"`
	Quality          Quality `json:"quality,omitempty"`
	QualityColor     string  `json:"quality_color,omitempty"`
	GrowthStage      int     `json:"growth_stage,omitempty"`
}
