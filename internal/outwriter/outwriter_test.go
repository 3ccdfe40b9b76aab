package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Output:        schema.TextOut,
		Precision:     1,
		Width:         100,
		RetentionDays: schema.DefaultRetentionDays,
		StoreBackend:  schema.SQLiteBackend,
	}
}

func sampleDays() map[string]*schema.DailyStats {
	return map[string]*schema.DailyStats{
		"2024-06-14": {
			CountRecord: schema.CountRecord{Alphabetic: 120, Words: 20, Whitespace: 19},
			Date:        "2024-06-14",
			Total:       159,
			Completed:   true,
		},
		"2024-06-15": {
			CountRecord: schema.CountRecord{Alphabetic: 40, Words: 8, Whitespace: 7},
			Date:        "2024-06-15",
			Total:       55,
			Completed:   true,
		},
	}
}

func TestWriteStatsTable(t *testing.T) {
	cfg := testConfig()
	days := sampleDays()
	streak := schema.StreakData{Current: 2, Longest: 5, LastDate: "2024-06-15"}

	var buf bytes.Buffer
	err := writeStatsTable(days, sortedDays(days), streak, cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Writing activity")
	assert.Contains(t, out, "2024-06-14")
	assert.Contains(t, out, "2024-06-15")
	assert.Contains(t, out, "Showing 2 days, 2 completed (total: 214, daily average: 107.0)")
	assert.Contains(t, out, "Current streak: 2 days (longest: 5)")
	assert.Contains(t, out, "Mon ")
	assert.Contains(t, out, "Sun ")
}

func TestWriteStatsTableEmoji(t *testing.T) {
	cfg := testConfig()
	cfg.UseEmojis = true

	var buf bytes.Buffer
	err := writeStatsTable(nil, nil, schema.StreakData{}, cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "📊 Writing activity")
}

func TestPrintStatsJSONToFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "stats.json")

	streak := schema.StreakData{Current: 2, Longest: 5, LastDate: "2024-06-15"}
	require.NoError(t, PrintStats(sampleDays(), streak, cfg, time.Millisecond))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded struct {
		Days   []*schema.DailyStats `json:"days"`
		Streak schema.StreakData    `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Days, 2)
	assert.Equal(t, "2024-06-14", decoded.Days[0].Date)
	assert.Equal(t, 2, decoded.Streak.Current)
}

func TestPrintStatsCSVToFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "stats.csv")

	require.NoError(t, PrintStats(sampleDays(), schema.StreakData{}, cfg, time.Millisecond))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,logographic,alphabetic,punctuation,digits,whitespace,words,total,completed", lines[0])
	assert.Contains(t, lines[1], "2024-06-14,0,120,0,0,19,20,159,true")
}

func TestWriteTrackTable(t *testing.T) {
	cfg := testConfig()
	results := []schema.TrackResult{
		{Source: "notes/a.md", Counts: schema.CountRecord{Alphabetic: 10, Words: 2}, Total: 12},
		{Source: "notes/b.md", Counts: schema.CountRecord{Logographic: 5}, Total: 5},
	}
	day := &schema.DailyStats{Date: "2024-06-15", Total: 17, Completed: true}
	streak := schema.StreakData{Current: 3, Longest: 4, LastDate: "2024-06-15"}

	var buf bytes.Buffer
	err := writeTrackTable(results, day, streak, cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "notes/a.md")
	assert.Contains(t, out, "notes/b.md")
	assert.Contains(t, out, "Tracked 2 documents (today 2024-06-15: total 17, streak 3 days)")
	assert.Contains(t, out, "Store backend: sqlite")
}

func TestWriteStreakPanel(t *testing.T) {
	tests := []struct {
		name     string
		streak   schema.StreakData
		todayKey string
		expected []string
	}{
		{
			name:     "uninitialized",
			streak:   schema.StreakData{},
			todayKey: "2024-06-15",
			expected: []string{"No writing activity recorded yet."},
		},
		{
			name:     "active today",
			streak:   schema.StreakData{Current: 3, Longest: 9, LastDate: "2024-06-15"},
			todayKey: "2024-06-15",
			expected: []string{"Current: 3 days (active today)", "Longest: 9 days", "Last activity: 2024-06-15"},
		},
		{
			name:     "at risk",
			streak:   schema.StreakData{Current: 3, Longest: 9, LastDate: "2024-06-14"},
			todayKey: "2024-06-15",
			expected: []string{"Current: 3 days (at risk: nothing tracked today)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeStreakPanel(tt.streak, tt.todayKey, testConfig(), time.Millisecond, &buf)
			require.NoError(t, err)
			for _, want := range tt.expected {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWriteStatusPanel(t *testing.T) {
	cfg := testConfig()
	store := schema.StoreStatus{
		Backend:       "sqlite",
		Connected:     true,
		DayCount:      12,
		ChangeCount:   340,
		StreakCurrent: 4,
		StreakLongest: 9,
		LastWrite:     time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		BlobSizeBytes: 2048,
		SchemaVersion: 1,
	}
	cache := &schema.CacheStatus{Backend: "sqlite", Connected: true, TotalEntries: 7}

	var buf bytes.Buffer
	err := writeStatusPanel(store, cache, cfg, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Backend: sqlite (connected: true, schema v1)")
	assert.Contains(t, out, "Days: 12, change entries: 340, snapshot size: 2048 bytes")
	assert.Contains(t, out, "Streak: 4 current / 9 longest")
	assert.Contains(t, out, "Entries: 7")
}
