package api

import (
	"context"
	"net/http"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

type plantRequest struct {
	SeedID    string `json:"seedId"`
	SlotIndex int    `json:"slotIndex"`
}

type clickRequest struct {
	PlantedTreeID string `json:"plantedTreeId"`
	Clicks        int    `json:"clicks"`
	TimeReduction int    `json:"timeReduction"`
}

type sellRequest struct {
	PlantedTreeID string `json:"plantedTreeId"`
}

type adRewardRequest struct {
	BoostType domain.BoostType `json:"boostType"`
}

// GameState loads the signed-in user and their planted trees
func (c *Client) GameState(ctx context.Context) (*domain.GameState, error) {
	data, err := c.doRequest(ctx, http.MethodGet, PathGameState, nil)
	if err != nil {
		return nil, err
	}
	var state domain.GameState
	if err := decodeData(data, &state, false); err != nil {
		return nil, err
	}
	return &state, nil
}

// Seeds lists every seed in the catalog
func (c *Client) Seeds(ctx context.Context) ([]domain.Seed, error) {
	data, err := c.doRequest(ctx, http.MethodGet, PathSeeds, nil)
	if err != nil {
		return nil, err
	}
	seeds := []domain.Seed{}
	if err := decodeData(data, &seeds, true); err != nil {
		return nil, err
	}
	return seeds, nil
}

// Locations lists every garden location
func (c *Client) Locations(ctx context.Context) ([]domain.Location, error) {
	data, err := c.doRequest(ctx, http.MethodGet, PathLocations, nil)
	if err != nil {
		return nil, err
	}
	locations := []domain.Location{}
	if err := decodeData(data, &locations, true); err != nil {
		return nil, err
	}
	return locations, nil
}

// PlantTree plants a seed into a slot
func (c *Client) PlantTree(ctx context.Context, seedID string, slotIndex int) (*domain.PlantedTree, error) {
	data, err := c.doRequest(ctx, http.MethodPost, PathPlantTree, plantRequest{SeedID: seedID, SlotIndex: slotIndex})
	if err != nil {
		return nil, err
	}
	var tree domain.PlantedTree
	if err := decodeData(data, &tree, false); err != nil {
		return nil, err
	}
	return &tree, nil
}

// ClickTree submits a batch of water clicks. It is never retried.
func (c *Client) ClickTree(ctx context.Context, plantedTreeID string, clicks, timeReduction int) (*domain.ClickResult, error) {
	req := clickRequest{
		PlantedTreeID: plantedTreeID,
		Clicks:        clicks,
		TimeReduction: timeReduction,
	}
	data, err := c.doRequest(ctx, http.MethodPost, PathClickTree, req)
	if err != nil {
		return nil, err
	}
	var result domain.ClickResult
	if err := decodeData(data, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// SellTree sells a grown tree
func (c *Client) SellTree(ctx context.Context, plantedTreeID string) (*domain.SellResult, error) {
	data, err := c.doRequest(ctx, http.MethodPost, PathSellTree, sellRequest{PlantedTreeID: plantedTreeID})
	if err != nil {
		return nil, err
	}
	var result domain.SellResult
	if err := decodeData(data, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdStatus reports the user's daily ad allowance
func (c *Client) AdStatus(ctx context.Context) (*domain.AdStatus, error) {
	data, err := c.doRequest(ctx, http.MethodGet, PathAdStatus, nil)
	if err != nil {
		return nil, err
	}
	var status domain.AdStatus
	if err := decodeData(data, &status, false); err != nil {
		return nil, err
	}
	return &status, nil
}

// ClaimAdReward redeems one watched ad for a boost
func (c *Client) ClaimAdReward(ctx context.Context, boost domain.BoostType) (*domain.AdReward, error) {
	data, err := c.doRequest(ctx, http.MethodPost, PathAdReward, adRewardRequest{BoostType: boost})
	if err != nil {
		return nil, err
	}
	var reward domain.AdReward
	if err := decodeData(data, &reward, false); err != nil {
		return nil, err
	}
	return &reward, nil
}
