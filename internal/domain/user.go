package domain

import "time"

// User represents the signed-in player as returned by the backend
type User struct {
	ID                string    `json:"_id" yaml:"id"`
	GoogleID          string    `json:"googleId" yaml:"google_id"`
	Email             string    `json:"email" yaml:"email"`
	Name              string    `json:"name" yaml:"name"`
	Picture           string    `json:"picture" yaml:"picture"`
	Gold              int64     `json:"gold" yaml:"gold"`
	TotalEarnings     int64     `json:"totalEarnings" yaml:"total_earnings"`
	TotalTreesSold    int       `json:"totalTreesSold" yaml:"total_trees_sold"`
	ClickPowerLevel   int       `json:"clickPowerLevel" yaml:"click_power_level"`
	CurrentCombo      int       `json:"currentCombo" yaml:"current_combo"`
	MaxCombo          int       `json:"maxCombo" yaml:"max_combo"`
	UnlockedSeeds     []string  `json:"unlockedSeeds" yaml:"unlocked_seeds"`
	UnlockedLocations []string  `json:"unlockedLocations" yaml:"unlocked_locations"`
	CurrentLocation   string    `json:"currentLocation" yaml:"current_location"`
	CreatedAt         time.Time `json:"createdAt" yaml:"created_at"`
	LastLogin         time.Time `json:"lastLogin" yaml:"last_login"`
}

// HasUnlockedSeed reports whether the seed code is in the user's unlocked list
func (u *User) HasUnlockedSeed(code string) bool {
	for _, c := range u.UnlockedSeeds {
		if c == code {
			return true
		}
	}
	return false
}

// GameState is the full snapshot loaded on startup
type GameState struct {
	User         User          `json:"user"`
	PlantedTrees []PlantedTree `json:"plantedTrees"`
}
