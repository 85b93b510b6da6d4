package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

func TestIsSeedUnlocked(t *testing.T) {
	gold := func(v int64) domain.Seed {
		return domain.Seed{Code: "carrot", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockGold, Value: v}}
	}
	sold := func(v int64) domain.Seed {
		return domain.Seed{Code: "oak", UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockTreesSold, Value: v}}
	}

	tests := []struct {
		name string
		seed domain.Seed
		user domain.User
		want bool
	}{
		{"default requirement", domain.Seed{UnlockRequirement: domain.UnlockRequirement{Type: domain.UnlockDefault}}, domain.User{}, true},
		{"missing requirement", domain.Seed{}, domain.User{}, true},
		{"gold below", gold(500), domain.User{Gold: 499}, false},
		{"gold exact", gold(500), domain.User{Gold: 500}, true},
		{"trees sold below", sold(10), domain.User{TotalTreesSold: 9}, false},
		{"trees sold reached", sold(10), domain.User{TotalTreesSold: 12}, true},
		{"listed as unlocked", gold(1_000_000), domain.User{UnlockedSeeds: []string{"carrot"}}, true},
		{"unknown type", domain.Seed{UnlockRequirement: domain.UnlockRequirement{Type: "event"}}, domain.User{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSeedUnlocked(tt.seed, tt.user))
		})
	}
}
