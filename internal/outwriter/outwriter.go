// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTrack prints tracking results using the configured output format.
func (ow *OutWriter) WriteTrack(results []schema.TrackResult, day *schema.DailyStats, streak schema.StreakData, cfg *contract.Config, duration time.Duration) error {
	return PrintTrackResults(results, day, streak, cfg, duration)
}

// WriteStats prints daily statistics using the configured output format.
func (ow *OutWriter) WriteStats(days map[string]*schema.DailyStats, streak schema.StreakData, cfg *contract.Config, duration time.Duration) error {
	return PrintStats(days, streak, cfg, duration)
}

// WriteStreak prints streak state using the configured output format.
func (ow *OutWriter) WriteStreak(streak schema.StreakData, todayKey string, cfg *contract.Config, duration time.Duration) error {
	return PrintStreak(streak, todayKey, cfg, duration)
}

// WriteStoreStatus prints persistence health using the configured output format.
func (ow *OutWriter) WriteStoreStatus(store schema.StoreStatus, cache *schema.CacheStatus, cfg *contract.Config) error {
	return PrintStoreStatus(store, cache, cfg)
}
