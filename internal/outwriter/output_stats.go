package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStats outputs the retained daily statistics, dispatching based on the output format configured.
func PrintStats(days map[string]*schema.DailyStats, streak schema.StreakData, cfg *contract.Config, duration time.Duration) error {
	sorted := sortedDays(days)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStatsJSONResults(sorted, streak, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStatsCSVResults(sorted, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable calendar plus table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(days, sorted, streak, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// sortedDays flattens the day map into date order, oldest first.
func sortedDays(days map[string]*schema.DailyStats) []*schema.DailyStats {
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sorted := make([]*schema.DailyStats, 0, len(keys))
	for _, key := range keys {
		sorted = append(sorted, days[key])
	}
	return sorted
}

// writeStatsJSONResults handles opening the file and calling the JSON writer.
func writeStatsJSONResults(sorted []*schema.DailyStats, streak schema.StreakData, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		output := struct {
			Days   []*schema.DailyStats `json:"days"`
			Streak schema.StreakData    `json:"streak"`
		}{
			Days:   sorted,
			Streak: streak,
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeStatsCSVResults handles opening the file and calling the CSV writer.
func writeStatsCSVResults(sorted []*schema.DailyStats, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"date",
			"logographic",
			"alphabetic",
			"punctuation",
			"digits",
			"whitespace",
			"words",
			"total",
			"completed",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, d := range sorted {
				rec := []string{
					d.Date,
					strconv.Itoa(d.Logographic),
					strconv.Itoa(d.Alphabetic),
					strconv.Itoa(d.Punctuation),
					strconv.Itoa(d.Digits),
					strconv.Itoa(d.Whitespace),
					strconv.Itoa(d.Words),
					strconv.Itoa(d.Total),
					strconv.FormatBool(d.Completed),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeStatsTable generates and writes the calendar grid and the per-day table.
func writeStatsTable(days map[string]*schema.DailyStats, sorted []*schema.DailyStats, streak schema.StreakData, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	if _, err := fmt.Fprintln(writer, headerText(cfg, "📊", "Writing activity")); err != nil {
		return err
	}
	if _, err := fmt.Fprint(writer, buildCalendar(days, cfg, time.Now())); err != nil {
		return err
	}

	maxTotal := 0
	for _, d := range sorted {
		if d.Total > maxTotal {
			maxTotal = d.Total
		}
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Date", "Logo", "Alpha", "Punct", "Digit", "Space", "Words", "Total", "Level"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range sorted {
		level := contract.GetPlainLevel(d.Total, maxTotal)
		if cfg.UseColors {
			level = contract.GetColorLevel(d.Total, maxTotal)
		}
		data = append(data, []string{
			d.Date,
			strconv.Itoa(d.Logographic),
			strconv.Itoa(d.Alphabetic),
			strconv.Itoa(d.Punctuation),
			strconv.Itoa(d.Digits),
			strconv.Itoa(d.Whitespace),
			strconv.Itoa(d.Words),
			strconv.Itoa(d.Total),
			level,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	grandTotal := 0
	completed := 0
	for _, d := range sorted {
		grandTotal += d.Total
		if d.Completed {
			completed++
		}
	}
	average := 0.0
	if len(sorted) > 0 {
		average = float64(grandTotal) / float64(len(sorted))
	}

	if _, err := fmt.Fprintf(writer, "Showing %d days, %d completed (total: %d, daily average: %s)\n",
		len(sorted), completed, grandTotal, fmtFloat(average)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Current streak: %d days (longest: %d). Completed in %v. Store backend: %s\n",
		streak.Current, streak.Longest, duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}
