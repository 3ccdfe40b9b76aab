package core

import (
	"fmt"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// advanceStreak applies one day of writing activity to the streak
// state. Repeated calls for the same day are idempotent. A day that
// precedes the last recorded date is treated as a no-op and flagged,
// since it indicates clock skew or out-of-order reprocessing.
func advanceStreak(streak *schema.StreakData, today string) {
	if streak.LastDate == "" {
		streak.Current = 1
		streak.Longest = 1
		streak.LastDate = today
		return
	}

	diff, err := schema.DaysBetween(streak.LastDate, today)
	if err != nil {
		// A malformed last date cannot anchor continuity; start over.
		contract.LogWarn("streak date", err)
		streak.Current = 1
		if streak.Longest < 1 {
			streak.Longest = 1
		}
		streak.LastDate = today
		return
	}

	switch {
	case diff == 0:
		// Same day, repeat call.
	case diff == 1:
		streak.Current++
		if streak.Current > streak.Longest {
			streak.Longest = streak.Current
		}
		streak.LastDate = today
	case diff > 1:
		streak.Current = 1
		streak.LastDate = today
	default:
		contract.LogWarn("streak date", fmt.Errorf("today %s precedes last recorded date %s", today, streak.LastDate))
	}
}
