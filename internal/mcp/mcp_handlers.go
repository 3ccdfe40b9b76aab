package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/inkwellhq/inkwell/core"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// analyzeTextResult is the JSON payload returned by the analyze_text tool.
type analyzeTextResult struct {
	Counts schema.CountRecord `json:"counts"`
	Total  int                `json:"total"`
}

// streakResult is the JSON payload returned by the get_streak tool.
type streakResult struct {
	Current     int    `json:"current"`
	Longest     int    `json:"longest"`
	LastDate    string `json:"last_date,omitempty"`
	ActiveToday bool   `json:"active_today"`
}

func (h *toolHandler) handleAnalyzeText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	cfg := h.baseCfg.Clone()
	rec := core.AnalyzeText(text, cfg)

	result := analyzeTextResult{
		Counts: rec,
		Total:  cfg.EnabledTotal(rec),
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDailyStats(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	tracker, err := core.NewTracker(cfg, h.mgr.GetStateStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load tracker state: %v", err)), nil
	}

	days := tracker.Days()
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	if l := request.GetInt("limit", 0); l > 0 && l < len(keys) {
		keys = keys[:l]
	}

	ordered := make([]*schema.DailyStats, 0, len(keys))
	for _, key := range keys {
		ordered = append(ordered, days[key])
	}

	jsonData, _ := json.MarshalIndent(ordered, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStreak(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	tracker, err := core.NewTracker(cfg, h.mgr.GetStateStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load tracker state: %v", err)), nil
	}

	streak := tracker.Streak()
	result := streakResult{
		Current:     streak.Current,
		Longest:     streak.Longest,
		LastDate:    streak.LastDate,
		ActiveToday: streak.LastDate == tracker.TodayKey(),
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
