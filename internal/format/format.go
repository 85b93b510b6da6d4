// Package format renders game values for display.
package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// ReadyText is shown instead of a countdown once a tree has grown
const ReadyText = "Ready!"

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	thousand         = 1_000
	million          = 1_000_000
)

var printer = message.NewPrinter(language.English)

// Time formats a remaining duration in seconds: "2h 5m", "4m 10s", "9s" or ReadyText
func Time(seconds int64) string {
	if seconds <= 0 {
		return ReadyText
	}

	hours := seconds / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// ShortTime formats a grow time as whole hours or minutes ("3h", "45m")
func ShortTime(seconds int64) string {
	minutes := seconds / secondsPerMinute
	if minutes >= 60 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Gold abbreviates a gold amount ("1.5M", "12.0K", "999")
func Gold(gold int64) string {
	switch {
	case gold >= million:
		return fmt.Sprintf("%.1fM", float64(gold)/million)
	case gold >= thousand:
		return fmt.Sprintf("%.1fK", float64(gold)/thousand)
	default:
		return strconv.FormatInt(gold, 10)
	}
}

// Number formats an integer with thousands separators
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// ComboMultiplier labels a combo tier weight ("×1", "×2", "×3")
func ComboMultiplier(weight int) string {
	if weight < 1 {
		weight = 1
	}
	return "×" + strconv.Itoa(weight)
}

// QualityColor returns the accent color for a tree quality
func QualityColor(q domain.Quality) string {
	switch q {
	case domain.QualityRainbow:
		return "#ff00ff"
	case domain.QualityGolden:
		return "#ffd700"
	default:
		return "#4CAF50"
	}
}

// QualityEmoji returns the badge shown next to a tree quality
func QualityEmoji(q domain.Quality) string {
	switch q {
	case domain.QualityRainbow:
		return "🌈"
	case domain.QualityGolden:
		return "⭐"
	default:
		return "🌱"
	}
}
