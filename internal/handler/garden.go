package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/IdleGarden_Go/internal/combo"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/format"
	"github.com/osse101/IdleGarden_Go/internal/garden"
	"github.com/osse101/IdleGarden_Go/internal/logger"
)

// PlantRequest represents the request to plant a seed
type PlantRequest struct {
	SeedID    string `json:"seed_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	SlotIndex int    `json:"slot_index" validate:"min=0,max=8"`
}

// AdRewardRequest represents the request to claim a watched ad
type AdRewardRequest struct {
	BoostType string `json:"boost_type" validate:"required,boost"`
}

// TapResponse describes the combo after an accepted tap
type TapResponse struct {
	Clicks           int        `json:"clicks"`
	PendingReduction int        `json:"pending_reduction_seconds"`
	ComboMultiplier  string     `json:"combo_multiplier"`
	FlushDeadline    *time.Time `json:"flush_deadline,omitempty"`
	Flushed          bool       `json:"flushed"`
	EffectID         string     `json:"effect_id"`
	EffectExpiresAt  time.Time  `json:"effect_expires_at"`
}

// GardenHandler handles the local control surface
type GardenHandler struct {
	svc garden.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(svc garden.Service) *GardenHandler {
	return &GardenHandler{svc: svc}
}

// State returns the live frame, user and tree
func (h *GardenHandler) State(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.State(r.Context()))
}

// Tap registers one water tap
func (h *GardenHandler) Tap(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Tap(r.Context())
	if err != nil {
		respondServiceError(w, r, OpTap, err)
		return
	}
	respondJSON(w, http.StatusOK, newTapResponse(res))
}

func newTapResponse(res combo.TapResult) TapResponse {
	out := TapResponse{
		Clicks:           res.Clicks,
		PendingReduction: res.PendingReduction,
		ComboMultiplier:  format.ComboMultiplier(combo.CurrentWeight(res.Clicks)),
		Flushed:          res.Flush != nil,
		EffectID:         res.Effect.ID,
		EffectExpiresAt:  res.Effect.ExpiresAt,
	}
	if !res.Deadline.IsZero() {
		d := res.Deadline
		out.FlushDeadline = &d
	}
	return out
}

// Plant puts a seed in the garden slot
func (h *GardenHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPlant); err != nil {
		return
	}

	tree, err := h.svc.Plant(r.Context(), req.SeedID, req.SlotIndex)
	if err != nil {
		respondServiceError(w, r, OpPlant, err)
		return
	}

	log.Info("Plant successful", "tree_id", tree.ID, "quality", tree.Quality)
	respondJSON(w, http.StatusCreated, DataResponse{
		Message: fmt.Sprintf("%s %s", format.QualityEmoji(tree.Quality), MsgTreePlanted),
		Data:    tree,
	})
}

// Sell harvests the grown tree
func (h *GardenHandler) Sell(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Sell(r.Context())
	if err != nil {
		respondServiceError(w, r, OpSell, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{
		Message: fmt.Sprintf(MsgTreeSoldFormat, res.SeedName, format.Gold(res.SoldPrice)),
		Data:    res,
	})
}

// Refresh re-reads the garden from the backend
func (h *GardenHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Refresh(r.Context()); err != nil {
		respondServiceError(w, r, OpRefresh, err)
		return
	}
	respondJSON(w, http.StatusOK, h.svc.State(r.Context()))
}

// Seeds lists the seed catalog with unlock state
func (h *GardenHandler) Seeds(w http.ResponseWriter, r *http.Request) {
	seeds, err := h.svc.Seeds(r.Context())
	if err != nil {
		respondServiceError(w, r, OpSeeds, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: seeds})
}

// Locations lists the garden locations
func (h *GardenHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.svc.Locations(r.Context())
	if err != nil {
		respondServiceError(w, r, OpLocations, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: locations})
}

// AdStatus reports the daily ad allowance
func (h *GardenHandler) AdStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.AdStatus(r.Context())
	if err != nil {
		respondServiceError(w, r, OpAdStatus, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: status})
}

// ClaimAdReward redeems a watched ad for a boost
func (h *GardenHandler) ClaimAdReward(w http.ResponseWriter, r *http.Request) {
	var req AdRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpClaimReward); err != nil {
		return
	}

	reward, err := h.svc.ClaimAdReward(r.Context(), domain.BoostType(strings.ToLower(req.BoostType)))
	if err != nil {
		respondServiceError(w, r, OpClaimReward, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgAdRewardClaimed, Data: reward})
}
