package schema

import "time"

// StoreStatus describes the state store for the status command.
type StoreStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	DayCount      int       `json:"day_count"`
	ChangeCount   int       `json:"change_count"`
	StreakCurrent int       `json:"streak_current"`
	StreakLongest int       `json:"streak_longest"`
	LastWrite     time.Time `json:"last_write,omitempty"`
	BlobSizeBytes int64     `json:"blob_size_bytes"`
	SchemaVersion int       `json:"schema_version"`
}

// CacheStatus describes the content cache for the status command.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int64     `json:"total_entries"`
	OldestEntryTime time.Time `json:"oldest_entry_time,omitempty"`
	LastEntryTime   time.Time `json:"last_entry_time,omitempty"`
}
