// Package schema has configs, models and global variables for all parts of inkwell.
package schema

import "time"

// CountRecord is the six-category tally produced by one classification
// pass over a document's content text. It is produced fresh by every
// pass and never merged across passes.
type CountRecord struct {
	Logographic int `json:"logographic"` // Characters in the logographic script ranges (CJK, kana)
	Alphabetic  int `json:"alphabetic"`  // ASCII letters, counted per character
	Punctuation int `json:"punctuation"` // Characters outside word, whitespace and logographic classes
	Digits      int `json:"digits"`      // ASCII and full-width digits
	Whitespace  int `json:"whitespace"`  // Space, tab, line feed, carriage return
	Words       int `json:"words"`       // Alphabetic runs of length > 1, Roman-numeral tokens excluded
}

// CharChange is an immutable audit entry appended to a day's change log
// whenever that day's counters are overwritten.
type CharChange struct {
	Time   time.Time    `json:"time"`
	Action ChangeAction `json:"action"`
	Source string       `json:"source"` // Identifier of the document that triggered the change
	Counts CountRecord  `json:"counts"` // Snapshot of the counters at the moment of the change
	Total  int          `json:"total"`
}

// DailyStats is the durable statistics record for one calendar day.
// Updates overwrite the counters with the latest analysis result for the
// day; they do not accumulate.
type DailyStats struct {
	CountRecord // The six counters for the day's latest analysis

	Date      string       `json:"date"`      // YYYY-MM-DD in local time
	Total     int          `json:"total"`     // Sum of the counters whose tracking option is enabled
	Completed bool         `json:"completed"` // Total > 0
	Changes   []CharChange `json:"changes,omitempty"`
}

// TrackResult is the per-document outcome of one tracking run, used
// for reporting only; durable state lives in DailyStats.
type TrackResult struct {
	Source string      `json:"source"`
	Counts CountRecord `json:"counts"`
	Total  int         `json:"total"`
}

// StreakData tracks consecutive days with writing activity.
// Invariant: Current <= Longest, except in the reset state where both are 0.
type StreakData struct {
	Current  int    `json:"current"`
	Longest  int    `json:"longest"`
	LastDate string `json:"lastDate"` // Last date key the tracker advanced for; "" when uninitialized
}

// Snapshot is the full persisted state: every retained day record plus
// the streak triple. It is what the state store reads and writes as one
// opaque blob.
type Snapshot struct {
	Version int                    `json:"version"`
	Days    map[string]*DailyStats `json:"days"`
	Streak  StreakData             `json:"streak"`
}

// NewSnapshot returns an empty snapshot at the current version.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		Days:    make(map[string]*DailyStats),
	}
}
