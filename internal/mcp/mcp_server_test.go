package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/internal/iocache"
	mcp_internal "github.com/inkwellhq/inkwell/internal/mcp"
	"github.com/inkwellhq/inkwell/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *contract.Config {
	return &contract.Config{
		TrackLogographic: true,
		TrackAlphabetic:  true,
		TrackPunctuation: true,
		TrackDigits:      true,
		TrackWhitespace:  true,
		WordCount:        true,
		RetentionDays:    contract.DefaultRetentionDays,
	}
}

func TestMCPServerHandlers(t *testing.T) {
	baseCfg := newTestConfig()

	// Recent dates so the retention pass keeps both days
	today := time.Now().Format(time.DateOnly)
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)

	snap := schema.NewSnapshot()
	snap.Days[yesterday] = &schema.DailyStats{
		CountRecord: schema.CountRecord{Alphabetic: 100, Words: 20},
		Date:        yesterday,
		Total:       120,
		Completed:   true,
	}
	snap.Days[today] = &schema.DailyStats{
		CountRecord: schema.CountRecord{Alphabetic: 50, Words: 10},
		Date:        today,
		Total:       60,
		Completed:   true,
	}
	snap.Streak = schema.StreakData{Current: 2, Longest: 5, LastDate: today}

	stateStore := &iocache.MockStateStore{}
	stateStore.On("LoadSnapshot").Return(snap, nil)

	mgr := &iocache.MockStoreManager{}
	mgr.On("GetStateStore").Return(stateStore)

	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("analyze_text missing text", func(t *testing.T) {
		tool := s.GetTool("analyze_text")
		require.NotNil(t, tool, "Tool analyze_text should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "analyze_text",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "text is required")
	})

	t.Run("analyze_text counts", func(t *testing.T) {
		tool := s.GetTool("analyze_text")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "analyze_text",
				Arguments: map[string]any{
					"text": "# Title\n\nHello **world**, 123!\n",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"alphabetic": 15`)
		assert.Contains(t, text, `"words": 3`)
		assert.Contains(t, text, `"total": 31`)
	})

	t.Run("get_daily_stats with limit", func(t *testing.T) {
		tool := s.GetTool("get_daily_stats")
		require.NotNil(t, tool, "Tool get_daily_stats should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_daily_stats",
				Arguments: map[string]any{
					"limit": 1.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, today, "Most recent day should be returned")
		assert.NotContains(t, text, yesterday, "Older days should be cut by the limit")
	})

	t.Run("get_streak", func(t *testing.T) {
		tool := s.GetTool("get_streak")
		require.NotNil(t, tool, "Tool get_streak should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_streak",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"current": 2`)
		assert.Contains(t, text, `"longest": 5`)
	})
}
