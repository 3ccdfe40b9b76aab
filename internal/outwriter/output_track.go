package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTrackResults outputs one tracking run, dispatching based on the output format configured.
func PrintTrackResults(results []schema.TrackResult, day *schema.DailyStats, streak schema.StreakData, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTrackJSONResults(results, day, streak, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTrackCSVResults(results, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrackTable(results, day, streak, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTrackJSONResults handles opening the file and calling the JSON writer.
func writeTrackJSONResults(results []schema.TrackResult, day *schema.DailyStats, streak schema.StreakData, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		output := struct {
			Documents []schema.TrackResult `json:"documents"`
			Day       *schema.DailyStats   `json:"day"`
			Streak    schema.StreakData    `json:"streak"`
		}{
			Documents: results,
			Day:       day,
			Streak:    streak,
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeTrackCSVResults handles opening the file and calling the CSV writer.
func writeTrackCSVResults(results []schema.TrackResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"source",
			"logographic",
			"alphabetic",
			"punctuation",
			"digits",
			"whitespace",
			"words",
			"total",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, r := range results {
				rec := []string{
					r.Source,
					strconv.Itoa(r.Counts.Logographic),
					strconv.Itoa(r.Counts.Alphabetic),
					strconv.Itoa(r.Counts.Punctuation),
					strconv.Itoa(r.Counts.Digits),
					strconv.Itoa(r.Counts.Whitespace),
					strconv.Itoa(r.Counts.Words),
					strconv.Itoa(r.Total),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeTrackTable generates and writes the human-readable table.
func writeTrackTable(results []schema.TrackResult, day *schema.DailyStats, streak schema.StreakData, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, headerText(cfg, "✍️", "Tracked documents")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Source", "Logo", "Alpha", "Punct", "Digit", "Space", "Words", "Total"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			contract.TruncatePath(r.Source, getMaxTableSourceWidth(cfg)),
			strconv.Itoa(r.Counts.Logographic),
			strconv.Itoa(r.Counts.Alphabetic),
			strconv.Itoa(r.Counts.Punctuation),
			strconv.Itoa(r.Counts.Digits),
			strconv.Itoa(r.Counts.Whitespace),
			strconv.Itoa(r.Counts.Words),
			strconv.Itoa(r.Total),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Tracked %d documents (today %s: total %d, streak %d days)\n",
		len(results), day.Date, day.Total, streak.Current); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}
