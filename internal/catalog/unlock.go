package catalog

import "github.com/osse101/IdleGarden_Go/internal/domain"

// IsSeedUnlocked reports whether user meets seed's unlock requirement.
// Seeds the backend already lists as unlocked for the user always pass.
func IsSeedUnlocked(seed domain.Seed, user domain.User) bool {
	if user.HasUnlockedSeed(seed.Code) {
		return true
	}

	req := seed.UnlockRequirement
	switch req.Type {
	case domain.UnlockDefault, "":
		return true
	case domain.UnlockGold:
		return user.Gold >= req.Value
	case domain.UnlockTreesSold:
		return int64(user.TotalTreesSold) >= req.Value
	default:
		return false
	}
}
