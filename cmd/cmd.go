// Package cmd defines the command-line interface for inkwell.
package cmd

import (
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("track-logographic", true, "Count logographic characters (CJK ideographs, kana)")
	rootCmd.PersistentFlags().Bool("track-alphabetic", true, "Count ASCII letters")
	rootCmd.PersistentFlags().Bool("track-punctuation", true, "Count punctuation characters")
	rootCmd.PersistentFlags().Bool("track-digits", true, "Count digit characters")
	rootCmd.PersistentFlags().Bool("track-whitespace", true, "Count whitespace characters")
	rootCmd.PersistentFlags().Bool("word-count", true, "Count words alongside characters")
	rootCmd.PersistentFlags().String("cache", "yes", "Enable the stripped-content cache (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-ttl", "24h", "Time before a cached document entry goes stale")
	rootCmd.PersistentFlags().Int("retention", contract.DefaultRetentionDays, "Days of history to retain")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or suffixes to ignore")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "State store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored calendar cells (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of resetCmd to Viper
	resetCmd.Flags().Bool("force", false, "Confirm deletion of all recorded statistics")
	if err := viper.BindPFlags(resetCmd.Flags()); err != nil {
		contract.LogFatal("Error binding reset flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
