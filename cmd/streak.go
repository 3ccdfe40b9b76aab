package cmd

import (
	"github.com/inkwellhq/inkwell/core"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/spf13/cobra"
)

// streakCmd shows the consecutive-day writing streak.
var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current and longest writing streaks.",
	Long: `Display how many consecutive days have registered writing
activity, the longest run on record, and whether today still counts.

Examples:
  # Check the streak
  inkwell streak

  # Machine-readable streak for a status bar
  inkwell streak --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStreak(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show streak", err)
		}
	},
}
