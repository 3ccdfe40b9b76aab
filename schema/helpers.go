package schema

import (
	"sort"
	"time"
)

// DayKey formats a time as a date key in the local timezone.
func DayKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// ParseDayKey parses a date key back into a local-time midnight value.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyFormat, key, time.Local)
}

// DaysBetween returns the whole-day difference between two date keys
// (to - from). The result is negative when 'to' precedes 'from'.
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDayKey(from)
	if err != nil {
		return 0, err
	}
	b, err := ParseDayKey(to)
	if err != nil {
		return 0, err
	}
	// Round instead of truncate so DST transitions (23h or 25h days)
	// still resolve to a whole day count.
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour)), nil
}

// IsValidDayKey reports whether key parses as a date key.
func IsValidDayKey(key string) bool {
	_, err := ParseDayKey(key)
	return err == nil
}

// SortedDayKeys returns the snapshot's day keys in ascending date order.
func (s *Snapshot) SortedDayKeys() []string {
	keys := make([]string, 0, len(s.Days))
	for k := range s.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
