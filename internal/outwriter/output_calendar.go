package outwriter

import (
	"strings"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// buildCalendar renders the daily records as a heat grid, one column
// per week and one row per weekday, newest week in the last column.
// Days beyond the data are blanks; days without activity are dots.
func buildCalendar(days map[string]*schema.DailyStats, cfg *contract.Config, now time.Time) string {
	weeks := getMaxCalendarWeeks(cfg)

	maxTotal := 0
	for _, d := range days {
		if d.Total > maxTotal {
			maxTotal = d.Total
		}
	}

	firstWeek := startOfWeek(now).AddDate(0, 0, -7*(weeks-1))

	var b strings.Builder
	for row := range weekdayLabels {
		b.WriteString(weekdayLabels[row])
		b.WriteByte(' ')
		for col := 0; col < weeks; col++ {
			date := firstWeek.AddDate(0, 0, col*7+row)
			if date.After(now) {
				b.WriteString("  ")
				continue
			}
			total := 0
			if d, ok := days[schema.DayKey(date)]; ok {
				total = d.Total
			}
			b.WriteString(contract.GetHeatCell(total, maxTotal, cfg.UseColors))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
