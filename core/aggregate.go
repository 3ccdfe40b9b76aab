package core

import (
	"fmt"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// Tracker aggregates classification results into durable per-day
// statistics and streak state. It owns the in-memory snapshot between
// loads and saves; callers outside the core see it read-only.
type Tracker struct {
	cfg   *contract.Config
	store contract.StateStore
	snap  *schema.Snapshot

	now func() time.Time // Overridable clock for tests
}

// NewTracker loads the last-written snapshot from the store, repairs
// malformed fields and drops day records outside the retention window.
// A missing snapshot starts empty; only a store failure is returned.
func NewTracker(cfg *contract.Config, store contract.StateStore) (*Tracker, error) {
	snap, err := store.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		snap = schema.NewSnapshot()
	}

	t := &Tracker{
		cfg:   cfg,
		store: store,
		snap:  snap,
		now:   time.Now,
	}
	if dropped := snap.Sanitize(t.now(), cfg.RetentionDays); dropped > 0 {
		contract.LogWarn("snapshot retention", fmt.Errorf("dropped %d expired or malformed day records", dropped))
	}
	return t, nil
}

// Update records the latest classification result for sourceID under
// today's date key. The day's counters are overwritten, not
// accumulated: re-analyzing the same document after an edit replaces
// the day's figures. A change-log entry is appended, the streak is
// advanced, and the snapshot is persisted. The in-memory mutation
// happens before persistence, so on a persist error the returned day
// record is already current and Flush can retry the write.
func (t *Tracker) Update(sourceID string, rec schema.CountRecord) (*schema.DailyStats, error) {
	now := t.now()
	key := schema.DayKey(now)

	day, ok := t.snap.Days[key]
	if !ok {
		day = &schema.DailyStats{Date: key}
		t.snap.Days[key] = day
	}

	total := t.cfg.EnabledTotal(rec)
	day.CountRecord = rec
	day.Total = total
	day.Completed = total > 0
	day.Changes = append(day.Changes, schema.CharChange{
		Time:   now,
		Action: schema.AddAction,
		Source: sourceID,
		Counts: rec,
		Total:  total,
	})
	if len(day.Changes) > schema.MaxChangeLogEntries {
		day.Changes = day.Changes[len(day.Changes)-schema.MaxChangeLogEntries:]
	}

	advanceStreak(&t.snap.Streak, key)

	if err := t.store.SaveSnapshot(t.snap); err != nil {
		return day, fmt.Errorf("persist daily stats: %w", err)
	}
	return day, nil
}

// Flush persists the current snapshot without mutating it. It exists
// to retry after a failed Update.
func (t *Tracker) Flush() error {
	if err := t.store.SaveSnapshot(t.snap); err != nil {
		return fmt.Errorf("persist daily stats: %w", err)
	}
	return nil
}

// Reset clears every day record and the streak state, then persists
// the empty snapshot so memory and storage move together.
func (t *Tracker) Reset() error {
	t.snap = schema.NewSnapshot()
	if err := t.store.SaveSnapshot(t.snap); err != nil {
		return fmt.Errorf("persist reset: %w", err)
	}
	return nil
}

// Day returns the record for the given date key, or nil when the day
// has no activity.
func (t *Tracker) Day(key string) *schema.DailyStats {
	return t.snap.Days[key]
}

// Days returns the day records keyed by date.
func (t *Tracker) Days() map[string]*schema.DailyStats {
	return t.snap.Days
}

// Streak returns the current streak state.
func (t *Tracker) Streak() schema.StreakData {
	return t.snap.Streak
}

// TodayKey returns the date key the tracker would write to right now.
func (t *Tracker) TodayKey() string {
	return schema.DayKey(t.now())
}
