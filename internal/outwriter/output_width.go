package outwriter

import (
	"os"

	"github.com/inkwellhq/inkwell/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth resolves the effective terminal width, honoring the
// width override from flag/env before probing the terminal.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxCalendarWeeks calculates how many week columns fit the terminal.
// Each week column takes two characters; the weekday gutter takes four.
func getMaxCalendarWeeks(cfg *contract.Config) int {
	available := (getTerminalWidth(cfg) - 4) / 2
	if available < 4 {
		return 4
	}
	// More than the retention window has no data to show.
	maxWeeks := cfg.RetentionDays/7 + 1
	if available > maxWeeks {
		return maxWeeks
	}
	return available
}

// getMaxTableSourceWidth calculates the maximum width for source paths
// in table output based on terminal width and the fixed count columns.
func getMaxTableSourceWidth(cfg *contract.Config) int {
	// Reserve space for the six count columns and total with borders/padding
	baseWidth := 60

	available := getTerminalWidth(cfg) - baseWidth
	if available < 15 {
		// Minimum reasonable source width
		return 15
	}
	if available > 70 {
		// Maximum source width to prevent overly long paths
		return 70
	}
	return available
}
