package iocache

import (
	"errors"
	"fmt"

	"github.com/inkwellhq/inkwell/internal/parquet"
)

// ExecuteStateExport performs the actual export of tracker state to Parquet files.
func ExecuteStateExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the state store
	store := Manager.GetStateStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get state status: %w", err)
	}

	if status.DayCount == 0 {
		return errors.New("no tracking data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total days: %d\n", status.DayCount)
	fmt.Printf("Total change entries: %d\n", status.ChangeCount)

	// Load the full snapshot
	snap, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap == nil || len(snap.Days) == 0 {
		return errors.New("no tracking data found to export")
	}

	// Convert to Parquet format
	parquetDays := parquet.ConvertDayRecords(snap.Days)
	parquetChanges := parquet.ConvertChangeRecords(snap.Days)

	// Write day records to Parquet
	daysFile := outputFile + ".days.parquet"
	if err := parquet.WriteDaysParquet(parquetDays, daysFile); err != nil {
		return fmt.Errorf("failed to write day records: %w", err)
	}
	fmt.Printf("Exported %d day records to: %s\n", len(parquetDays), daysFile)

	// Write change records to Parquet
	changesFile := outputFile + ".changes.parquet"
	if err := parquet.WriteChangesParquet(parquetChanges, changesFile); err != nil {
		return fmt.Errorf("failed to write change records: %w", err)
	}
	fmt.Printf("Exported %d change records to: %s\n", len(parquetChanges), changesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
