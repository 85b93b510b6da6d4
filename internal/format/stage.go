package format

import (
	"fmt"
	"strings"
)

// MaxGrowthStage is the stage of a fully grown tree icon
const MaxGrowthStage = 4

const grownIconSuffix = "_04.png"

// GrowthStage maps a progress percentage to an image stage from 1 to MaxGrowthStage
func GrowthStage(progress float64) int {
	switch {
	case progress >= 76:
		return 4
	case progress >= 51:
		return 3
	case progress >= 26:
		return 2
	default:
		return 1
	}
}

// TreeIcon swaps the grown-stage suffix of a seed icon path for the stage
// matching progress. Icons without the suffix are returned unchanged.
func TreeIcon(seedIcon string, progress float64) string {
	if !strings.HasSuffix(seedIcon, grownIconSuffix) {
		return seedIcon
	}
	base := strings.TrimSuffix(seedIcon, grownIconSuffix)
	return fmt.Sprintf("%s_%02d.png", base, GrowthStage(progress))
}
