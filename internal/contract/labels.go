package contract

import "github.com/fatih/color"

// Activity level labels for daily totals.
const (
	NoneLevel   = "none"
	LightLevel  = "light"
	SteadyLevel = "steady"
	StrongLevel = "strong"
	PeakLevel   = "peak"
)

var (
	PeakColor   = color.New(color.FgGreen, color.Bold) // peakColor marks the most productive days.
	StrongColor = color.New(color.FgGreen)             // strongColor marks above-average days.
	SteadyColor = color.New(color.FgYellow)            // steadyColor marks routine activity.
	LightColor  = color.New(color.FgHiBlack)           // lightColor marks minimal activity.
)

// GetPlainLevel maps a day's total against the best day on record to an
// activity level string. A zero maximum means no day has activity yet.
func GetPlainLevel(total, maxTotal int) string {
	if total <= 0 || maxTotal <= 0 {
		return NoneLevel
	}
	ratio := float64(total) / float64(maxTotal)
	switch {
	case ratio >= 0.75:
		return PeakLevel
	case ratio >= 0.5:
		return StrongLevel
	case ratio >= 0.25:
		return SteadyLevel
	default:
		return LightLevel
	}
}

// GetColorLevel returns the activity level with its color applied.
// It uses GetPlainLevel to determine the string, and then applies the
// appropriate color.
func GetColorLevel(total, maxTotal int) string {
	level := GetPlainLevel(total, maxTotal)
	switch level {
	case PeakLevel:
		return PeakColor.Sprint(level)
	case StrongLevel:
		return StrongColor.Sprint(level)
	case SteadyLevel:
		return SteadyColor.Sprint(level)
	case LightLevel:
		return LightColor.Sprint(level)
	default:
		return level
	}
}

// GetHeatCell returns the calendar cell glyph for a day's activity
// level, colored when enabled.
func GetHeatCell(total, maxTotal int, useColors bool) string {
	level := GetPlainLevel(total, maxTotal)
	if level == NoneLevel {
		return "·"
	}
	if !useColors {
		return "■"
	}
	switch level {
	case PeakLevel:
		return PeakColor.Sprint("■")
	case StrongLevel:
		return StrongColor.Sprint("■")
	case SteadyLevel:
		return SteadyColor.Sprint("■")
	default:
		return LightColor.Sprint("■")
	}
}
