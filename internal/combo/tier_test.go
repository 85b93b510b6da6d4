package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeReduction_TierBoundaries(t *testing.T) {
	tests := []struct {
		clicks int
		want   int
	}{
		{0, 0},
		{1, 1},
		{9, 9},
		{10, 11},
		{29, 49},
		{30, 52},
		{31, 55},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeReduction(tt.clicks), "clicks=%d", tt.clicks)
	}
}

func TestTimeReduction_MatchesSumOfWeights(t *testing.T) {
	sum := 0
	for n := 1; n <= 100; n++ {
		sum += ClickWeight(n)
		assert.Equal(t, sum, TimeReduction(n), "clicks=%d", n)
	}
}

func TestTimeReduction_StrictlyIncreasing(t *testing.T) {
	prev := TimeReduction(0)
	for n := 1; n <= 200; n++ {
		cur := TimeReduction(n)
		assert.Greater(t, cur, prev, "clicks=%d", n)
		prev = cur
	}
}

func TestClickWeight(t *testing.T) {
	assert.Equal(t, 0, ClickWeight(0))
	assert.Equal(t, 1, ClickWeight(9))
	assert.Equal(t, 2, ClickWeight(10))
	assert.Equal(t, 2, ClickWeight(29))
	assert.Equal(t, 3, ClickWeight(30))
}

func TestCurrentWeight(t *testing.T) {
	assert.Equal(t, 1, CurrentWeight(0))
	assert.Equal(t, 1, CurrentWeight(5))
	assert.Equal(t, 2, CurrentWeight(10))
	assert.Equal(t, 3, CurrentWeight(40))
}
