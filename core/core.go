// Package core has core logic for markup stripping, character
// classification, daily aggregation and streak tracking.
package core

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/inkwellhq/inkwell/core/markup"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/internal/outwriter"
	"github.com/inkwellhq/inkwell/schema"
)

// AnalyzeText strips markup from raw document text and classifies the
// remaining content. It is the pure pipeline shared by the track
// command and the MCP analysis tool.
func AnalyzeText(raw string, cfg *contract.Config) schema.CountRecord {
	return classify(markup.Strip(raw), cfg)
}

// ExecuteTrack analyzes the documents under the given paths and records
// the combined result under today's date key. It serves as the main
// entry point for the 'track' command. Each document is read through
// the advisory content cache, stripped and classified; the per-run
// combined record overwrites today's counters, so re-running track
// after edits replaces the day's figures rather than inflating them.
func ExecuteTrack(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, paths []string) error {
	start := time.Now()

	sources, err := collectSources(paths, cfg.Excludes)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return errors.New("no trackable documents found")
	}

	reader := contract.NewLocalContentSource()
	var combined schema.CountRecord
	results := make([]schema.TrackResult, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := cachedRead(ctx, cfg, reader, mgr, src)
		if err != nil {
			contract.LogWarn("read document", err)
			continue
		}
		rec := AnalyzeText(text, cfg)
		sumCounts(&combined, rec)
		results = append(results, schema.TrackResult{
			Source: src,
			Counts: rec,
			Total:  cfg.EnabledTotal(rec),
		})
	}
	if len(results) == 0 {
		return errors.New("every document failed to read")
	}

	tracker, err := NewTracker(cfg, mgr.GetStateStore())
	if err != nil {
		return err
	}
	day, err := tracker.Update(trackSourceID(paths), combined)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.PrintTrackResults(results, day, tracker.Streak(), cfg, duration)
}

// ExecuteStats prints the retained daily statistics as a calendar heat
// grid plus a per-day table. It serves as the main entry point for the
// 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	tracker, err := NewTracker(cfg, mgr.GetStateStore())
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintStats(tracker.Days(), tracker.Streak(), cfg, duration)
}

// ExecuteStreak prints the streak state. It serves as the main entry
// point for the 'streak' command.
func ExecuteStreak(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	tracker, err := NewTracker(cfg, mgr.GetStateStore())
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintStreak(tracker.Streak(), tracker.TodayKey(), cfg, duration)
}

// ExecuteReset clears every day record and the streak state in one
// step. The caller is expected to have confirmed the operation.
func ExecuteReset(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tracker, err := NewTracker(cfg, mgr.GetStateStore())
	if err != nil {
		return err
	}
	return tracker.Reset()
}

// sumCounts folds one classification result into a run-level record.
func sumCounts(dst *schema.CountRecord, rec schema.CountRecord) {
	dst.Logographic += rec.Logographic
	dst.Alphabetic += rec.Alphabetic
	dst.Punctuation += rec.Punctuation
	dst.Digits += rec.Digits
	dst.Whitespace += rec.Whitespace
	dst.Words += rec.Words
}

// collectSources expands the given paths into a sorted list of document
// files, honoring the configured exclude patterns. Directories are
// walked recursively; excluded directories are skipped whole.
func collectSources(paths []string, excludes []string) ([]string, error) {
	var sources []string
	for _, p := range paths {
		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && contract.ShouldIgnore(path+"/", excludes) {
					return filepath.SkipDir
				}
				return nil
			}
			if !contract.ShouldIgnore(path, excludes) {
				sources = append(sources, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// trackSourceID derives a stable identifier for a tracking run from its
// input paths, so repeated runs over the same corpus update the same
// change-log source.
func trackSourceID(paths []string) string {
	cleaned := make([]string, len(paths))
	for i, p := range paths {
		cleaned[i] = filepath.Clean(p)
	}
	sort.Strings(cleaned)
	return strings.Join(cleaned, ";")
}
