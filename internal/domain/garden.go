package domain

import "time"

// Quality is the display rarity rolled by the server when a tree is planted
type Quality string

const (
	QualityNormal  Quality = "normal"
	QualityGolden  Quality = "golden"
	QualityRainbow Quality = "rainbow"
)

// UnlockType is the kind of requirement gating a seed
type UnlockType string

const (
	UnlockDefault   UnlockType = "default"
	UnlockGold      UnlockType = "gold"
	UnlockTreesSold UnlockType = "trees_sold"
)

// BonusType is the kind of bonus a location grants
type BonusType string

const (
	BonusClickSpeed BonusType = "click_speed"
	BonusGrowSpeed  BonusType = "grow_speed"
	BonusSellPrice  BonusType = "sell_price"
)

// BoostType is the reward picked when claiming an ad
type BoostType string

const (
	BoostTime BoostType = "time"
	BoostSell BoostType = "sell"
)

// UnlockRequirement describes what a player needs before a seed can be planted
type UnlockRequirement struct {
	Type  UnlockType `json:"type"`
	Value int64      `json:"value"`
}

// Seed is a plantable catalog entry
type Seed struct {
	ID                string            `json:"_id"`
	Code              string            `json:"code"`
	Name              string            `json:"name"`
	BasePrice         int64             `json:"basePrice"`
	BaseSellPrice     int64             `json:"baseSellPrice"`
	BaseGrowTime      int               `json:"baseGrowTime"` // seconds
	Icon              string            `json:"icon"`
	Description       string            `json:"description"`
	UnlockRequirement UnlockRequirement `json:"unlockRequirement"`
	IsEvent           bool              `json:"isEvent"`
}

// Location is a garden the player can move to
type Location struct {
	ID               string    `json:"_id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	Order            int       `json:"order"`
	BonusType        BonusType `json:"bonusType"`
	BonusValue       float64   `json:"bonusValue"`
	BonusMultiplier  float64   `json:"bonusMultiplier"`
	Icon             string    `json:"icon"`
	Description      string    `json:"description"`
	LocationImageURL string    `json:"locationImageUrl"`
	PotImageURL      string    `json:"potImageUrl"`
}

// PlantedTree is the server-owned growing item. The server is authoritative for
// its timestamps and for TimeReduced, the seconds of watering it has acknowledged.
type PlantedTree struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"userId"`
	SeedID          string     `json:"seedId"`
	SlotIndex       int        `json:"slotIndex"`
	PlantedAt       time.Time  `json:"plantedAt"`
	HarvestableAt   time.Time  `json:"harvestableAt"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	CurrentGrowTime int        `json:"currentGrowTime"`
	TotalGrowTime   int        `json:"totalGrowTime"`
	Quality         Quality    `json:"quality"`
	IsReady         bool       `json:"isReady"`
	LocationBonus   float64    `json:"locationBonus"`
	TimeReduced     int        `json:"timeReduced,omitempty"`
}

// Start returns the growth start, falling back to PlantedAt for older payloads
func (t PlantedTree) Start() time.Time {
	if t.StartTime != nil && !t.StartTime.IsZero() {
		return *t.StartTime
	}
	return t.PlantedAt
}

// End returns the natural growth end, falling back to HarvestableAt
func (t PlantedTree) End() time.Time {
	if t.EndTime != nil && !t.EndTime.IsZero() {
		return *t.EndTime
	}
	return t.HarvestableAt
}

// GrowDuration is the natural growth duration before any watering
func (t PlantedTree) GrowDuration() time.Duration {
	return t.End().Sub(t.Start())
}

// ClickResult is the backend response to a watering submission
type ClickResult struct {
	PlantedTree     PlantedTree `json:"plantedTree"`
	User            User        `json:"user"`
	ClicksProcessed int         `json:"clicksProcessed"`
	TimeReduced     int         `json:"timeReduced"`
	NewCombo        int         `json:"newCombo"`
}

// SellResult is the backend response to selling a grown tree
type SellResult struct {
	SeedName       string  `json:"seedName"`
	Quality        Quality `json:"quality"`
	SoldPrice      int64   `json:"soldPrice"`
	NewGold        int64   `json:"newGold"`
	TotalEarnings  int64   `json:"totalEarnings"`
	TotalTreesSold int     `json:"totalTreesSold"`
}

// AdStatus reports the player's daily ad allowance
type AdStatus struct {
	DailyAdsWatched   int  `json:"dailyAdsWatched"`
	AdsRemaining      int  `json:"adsRemaining"`
	CanWatchAd        bool `json:"canWatchAd"`
	TotalAdWatchCount int  `json:"totalAdWatchCount"`
}

// AdReward is the backend response after an ad is watched
type AdReward struct {
	BoostType         BoostType `json:"boostType"`
	BoostValue        float64   `json:"boostValue"`
	DailyAdsWatched   int       `json:"dailyAdsWatched"`
	AdsRemaining      int       `json:"adsRemaining"`
	TotalAdWatchCount int       `json:"totalAdWatchCount"`
}
