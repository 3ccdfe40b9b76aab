package cmd

import (
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/internal/iocache"
	"github.com/spf13/cobra"
)

// exportCmd exports recorded statistics to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded statistics to Parquet for analytics tools.",
	Long: `Export all retained day records and their change logs to Parquet format.

Exports two datasets:
- Day records - one row per tracked calendar day
- Change records - the audit log of counter overwrites

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  inkwell export --output-file writing-data.parquet

  # Use with DuckDB for analysis
  inkwell export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.days.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteStateExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export statistics", err)
		}
	},
}
