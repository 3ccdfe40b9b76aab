// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Inkwell MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Inkwell Writing Tracker",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_text ---
	s.AddTool(mcp.NewTool("analyze_text",
		mcp.WithDescription("Strip markup from a text and count its characters by category (logographic, alphabetic, punctuation, digits, whitespace, words)."),
		mcp.WithString("text", mcp.Description("The raw document text to analyze."), mcp.Required()),
	), h.handleAnalyzeText)

	// --- 2. Tool: get_daily_stats ---
	s.AddTool(mcp.NewTool("get_daily_stats",
		mcp.WithDescription("Retrieve the per-day writing statistics recorded by the tracker."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of days returned, most recent first.")),
	), h.handleGetDailyStats)

	// --- 3. Tool: get_streak ---
	s.AddTool(mcp.NewTool("get_streak",
		mcp.WithDescription("Retrieve the current and longest consecutive-day writing streaks."),
	), h.handleGetStreak)

	return s
}

// StartMCPServer starts the Inkwell MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
