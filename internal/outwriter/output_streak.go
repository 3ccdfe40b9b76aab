package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// PrintStreak outputs the streak state, dispatching based on the output format configured.
func PrintStreak(streak schema.StreakData, todayKey string, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStreakJSONResults(streak, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStreakCSVResults(streak, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStreakPanel(streak, todayKey, cfg, duration, w)
		}, "Wrote summary")
	}
	return nil
}

// writeStreakJSONResults handles opening the file and calling the JSON writer.
func writeStreakJSONResults(streak schema.StreakData, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, streak)
	}, "Wrote JSON")
}

// writeStreakCSVResults handles opening the file and calling the CSV writer.
func writeStreakCSVResults(streak schema.StreakData, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"current", "longest", "last_date"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return csvWriter.Write([]string{
				strconv.Itoa(streak.Current),
				strconv.Itoa(streak.Longest),
				streak.LastDate,
			})
		})
	}, "Wrote CSV")
}

// writeStreakPanel generates and writes the human-readable summary.
func writeStreakPanel(streak schema.StreakData, todayKey string, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, headerText(cfg, "🔥", "Writing streak")); err != nil {
		return err
	}

	if streak.LastDate == "" {
		if _, err := fmt.Fprintln(writer, "No writing activity recorded yet."); err != nil {
			return err
		}
	} else {
		active := streak.LastDate == todayKey
		status := "at risk: nothing tracked today"
		if active {
			status = "active today"
		}
		if _, err := fmt.Fprintf(writer, "Current: %d days (%s)\n", streak.Current, status); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "Longest: %d days\n", streak.Longest); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "Last activity: %s\n", streak.LastDate); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}
