package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthStage(t *testing.T) {
	tests := []struct {
		progress float64
		want     int
	}{
		{0, 1},
		{25.9, 1},
		{26, 2},
		{50.5, 2},
		{51, 3},
		{75, 3},
		{76, 4},
		{100, MaxGrowthStage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GrowthStage(tt.progress), "progress %.1f", tt.progress)
	}
}

func TestTreeIcon(t *testing.T) {
	icon := "/seeds/bean_sprout/bean_sprout_04.png"

	assert.Equal(t, "/seeds/bean_sprout/bean_sprout_01.png", TreeIcon(icon, 10))
	assert.Equal(t, "/seeds/bean_sprout/bean_sprout_03.png", TreeIcon(icon, 60))
	assert.Equal(t, icon, TreeIcon(icon, 100))
	assert.Equal(t, "/seeds/radish.png", TreeIcon("/seeds/radish.png", 10), "icons without a stage suffix are unchanged")
}
