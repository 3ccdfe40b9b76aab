package cmd

import (
	"fmt"

	"github.com/inkwellhq/inkwell/core"
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resetCmd wipes all recorded statistics.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded statistics and streaks.",
	Long: `Replace the persisted state with an empty snapshot, removing every
day record, the change log, and the streak history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before resetting
  inkwell export --output-file backup.parquet
  inkwell reset --force`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if !viper.GetBool("force") {
			fmt.Println("Refusing to delete recorded statistics without --force.")
			return
		}
		if err := core.ExecuteReset(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot reset statistics", err)
		}
		fmt.Println("All recorded statistics cleared.")
	},
}
