package cmd

import (
	"github.com/inkwellhq/inkwell/core"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd shows the recorded per-day statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded writing statistics per day.",
	Long: `Display the retained day records with a heat calendar and a
per-day breakdown of the tracked character categories.

Examples:
  # Show the recent history
  inkwell stats

  # Narrow output for small terminals
  inkwell stats --width 60

  # Export the history as CSV
  inkwell stats --output csv --output-file stats.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show statistics", err)
		}
	},
}
