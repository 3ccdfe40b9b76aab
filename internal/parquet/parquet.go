// Package parquet provides data structures and functions for exporting
// daily writing statistics to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/inkwellhq/inkwell/schema"
	"github.com/parquet-go/parquet-go"
)

// DayRecord represents one calendar day of writing statistics.
// This struct maps to one entry of the persisted snapshot's day map.
type DayRecord struct {
	// Date is the day key in YYYY-MM-DD local time
	Date string `parquet:"date,snappy"`

	// The six category counters from the day's latest analysis
	Logographic int32 `parquet:"logographic,snappy"`
	Alphabetic  int32 `parquet:"alphabetic,snappy"`
	Punctuation int32 `parquet:"punctuation,snappy"`
	Digits      int32 `parquet:"digits,snappy"`
	Whitespace  int32 `parquet:"whitespace,snappy"`
	Words       int32 `parquet:"words,snappy"`

	// Total is the sum of the counters that were enabled at update time
	Total int32 `parquet:"total,snappy"`

	// Completed reports whether the day registered any activity
	Completed bool `parquet:"completed,snappy"`
}

// ChangeRecord represents one change-log entry of a day record.
type ChangeRecord struct {
	// Date is the day key the change belongs to
	Date string `parquet:"date,snappy"`

	// Time is when the change was recorded (stored as TIMESTAMP with nanosecond precision)
	Time time.Time `parquet:"time,snappy"`

	// Action is the change kind
	Action string `parquet:"action,snappy"`

	// Source is the document identifier that triggered the change (nullable)
	Source *string `parquet:"source,optional,snappy"`

	// Total is the enabled-category total carried by the change
	Total int32 `parquet:"total,snappy"`
}

// ConvertDayRecords flattens the day map into export records, oldest first.
func ConvertDayRecords(days map[string]*schema.DailyStats) []DayRecord {
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]DayRecord, 0, len(keys))
	for _, key := range keys {
		d := days[key]
		records = append(records, DayRecord{
			Date:        d.Date,
			Logographic: int32(d.Logographic),
			Alphabetic:  int32(d.Alphabetic),
			Punctuation: int32(d.Punctuation),
			Digits:      int32(d.Digits),
			Whitespace:  int32(d.Whitespace),
			Words:       int32(d.Words),
			Total:       int32(d.Total),
			Completed:   d.Completed,
		})
	}
	return records
}

// ConvertChangeRecords flattens every day's change log into export
// records, oldest day first with in-day order preserved.
func ConvertChangeRecords(days map[string]*schema.DailyStats) []ChangeRecord {
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var records []ChangeRecord
	for _, key := range keys {
		for _, change := range days[key].Changes {
			rec := ChangeRecord{
				Date:   key,
				Time:   change.Time,
				Action: string(change.Action),
				Total:  int32(change.Total),
			}
			if change.Source != "" {
				source := change.Source
				rec.Source = &source
			}
			records = append(records, rec)
		}
	}
	return records
}

// WriteDaysParquet writes a slice of DayRecord structs to a Parquet file.
func WriteDaysParquet(data []DayRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the DayRecord struct tags
	writer := parquet.NewGenericWriter[DayRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteChangesParquet writes a slice of ChangeRecord structs to a Parquet file.
func WriteChangesParquet(data []ChangeRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ChangeRecord struct tags
	writer := parquet.NewGenericWriter[ChangeRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
