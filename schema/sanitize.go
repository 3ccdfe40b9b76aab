package schema

import "time"

// Sanitize repairs a count record loaded from storage: negative values
// default to 0. Malformed stored data is recovered locally, never fatal.
func (c *CountRecord) Sanitize() {
	if c.Logographic < 0 {
		c.Logographic = 0
	}
	if c.Alphabetic < 0 {
		c.Alphabetic = 0
	}
	if c.Punctuation < 0 {
		c.Punctuation = 0
	}
	if c.Digits < 0 {
		c.Digits = 0
	}
	if c.Whitespace < 0 {
		c.Whitespace = 0
	}
	if c.Words < 0 {
		c.Words = 0
	}
}

// Sanitize repairs a day record loaded from storage. Counters and total
// are clamped to non-negative values, the completed flag is recomputed
// from the total, and an oversized change log is truncated to the most
// recent window.
func (d *DailyStats) Sanitize() {
	d.CountRecord.Sanitize()
	if d.Total < 0 {
		d.Total = 0
	}
	d.Completed = d.Total > 0
	if len(d.Changes) > MaxChangeLogEntries {
		d.Changes = d.Changes[len(d.Changes)-MaxChangeLogEntries:]
	}
}

// Sanitize repairs streak data loaded from storage. A malformed last
// date resets the streak to the uninitialized state; counters are
// clamped so that Current <= Longest holds.
func (s *StreakData) Sanitize() {
	if s.LastDate != "" && !IsValidDayKey(s.LastDate) {
		*s = StreakData{}
		return
	}
	if s.Current < 0 {
		s.Current = 0
	}
	if s.Longest < 0 {
		s.Longest = 0
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
}

// Sanitize validates a snapshot loaded from storage and applies the
// retention window. Day records with malformed keys are dropped, the
// remaining records are field-defaulted, and records older than
// retentionDays relative to now are filtered out. It returns the number
// of day records dropped for either reason.
func (s *Snapshot) Sanitize(now time.Time, retentionDays int) int {
	if s.Days == nil {
		s.Days = make(map[string]*DailyStats)
	}
	cutoff := DayKey(now.AddDate(0, 0, -retentionDays))

	dropped := 0
	for key, day := range s.Days {
		if day == nil || !IsValidDayKey(key) || key < cutoff {
			delete(s.Days, key)
			dropped++
			continue
		}
		day.Date = key
		day.Sanitize()
	}
	s.Streak.Sanitize()
	return dropped
}
