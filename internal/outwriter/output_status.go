package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// PrintStoreStatus outputs persistence health for the state store and,
// when caching is enabled, the content cache.
func PrintStoreStatus(store schema.StoreStatus, cache *schema.CacheStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			output := struct {
				Store schema.StoreStatus  `json:"store"`
				Cache *schema.CacheStatus `json:"cache,omitempty"`
			}{
				Store: store,
				Cache: cache,
			}
			return writeJSON(w, output)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeStatusPanel(store, cache, cfg, w)
	}, "Wrote status")
}

// writeStatusPanel generates and writes the human-readable status panel.
func writeStatusPanel(store schema.StoreStatus, cache *schema.CacheStatus, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, headerText(cfg, "🗄️", "State store")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Backend: %s (connected: %t, schema v%d)\n",
		store.Backend, store.Connected, store.SchemaVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Days: %d, change entries: %d, snapshot size: %d bytes\n",
		store.DayCount, store.ChangeCount, store.BlobSizeBytes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Streak: %d current / %d longest\n",
		store.StreakCurrent, store.StreakLongest); err != nil {
		return err
	}
	if !store.LastWrite.IsZero() {
		if _, err := fmt.Fprintf(writer, "Last write: %s\n", store.LastWrite.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	if cache == nil {
		return nil
	}
	if _, err := fmt.Fprintln(writer, headerText(cfg, "⚡", "Content cache")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Backend: %s (connected: %t)\n", cache.Backend, cache.Connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Entries: %d\n", cache.TotalEntries); err != nil {
		return err
	}
	if cache.TotalEntries > 0 {
		if _, err := fmt.Fprintf(writer, "Oldest entry: %s, newest entry: %s\n",
			cache.OldestEntryTime.Format(time.RFC3339), cache.LastEntryTime.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}
