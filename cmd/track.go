package cmd

import (
	"github.com/inkwellhq/inkwell/core"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/spf13/cobra"
)

// trackCmd analyzes documents and records today's writing volume.
var trackCmd = &cobra.Command{
	Use:   "track <path> [path...]",
	Short: "Analyze documents and record today's writing volume.",
	Long: `Strip markup from the given documents, classify every remaining
character, and overwrite today's statistics with the result.

Each run replaces the day's counters with the latest analysis, so tracking
the same documents repeatedly is safe. Directories are walked recursively;
binary formats and configured excludes are skipped.

Examples:
  # Track a whole notes vault
  inkwell track ~/notes

  # Track specific drafts
  inkwell track draft.md chapter-02.md

  # Track without counting whitespace
  inkwell track ~/notes --track-whitespace=false

  # Export today's result as JSON
  inkwell track ~/notes --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteTrack(rootCtx, cfg, storeManager, args); err != nil {
			contract.LogFatal("Cannot track documents", err)
		}
	},
}
