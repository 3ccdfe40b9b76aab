package cmd

import (
	"fmt"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/internal/iocache"
	"github.com/inkwellhq/inkwell/internal/outwriter"
	"github.com/inkwellhq/inkwell/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	// Cache toggle decides whether the content cache status is reported
	enableCache, err := contract.ParseBoolString(viper.GetString("cache"))
	if err != nil {
		return fmt.Errorf("invalid --cache value: %w", err)
	}
	cfg.EnableCache = enableCache

	// Initialize stores with the loaded config
	if err := iocache.InitStores(cfg); err != nil {
		return fmt.Errorf("failed to initialize stores: %w", err)
	}

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = iocache.GetStateDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on persistence management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by tracking commands. This avoids document config
// processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the statistics store and content cache",
	Long: `Manage the persistence layer holding your recorded statistics.

Inkwell keeps two datasets:
- The state store with day records, change logs, and streaks
- The content cache with stripped document text (advisory only)

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all persisted data
  migrate - Run database schema migrations

Examples:
  # Check store status
  inkwell store status

  # Clear everything after a backend switch
  inkwell store clear`,
}

// storeClearCmd clears the persisted state and cache.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted statistics and cached content",
	Long: `Delete the state store and the content cache from the configured backend.

For SQLite: Deletes the database files
For MySQL/PostgreSQL: Drops the tables

Use this when:
- Switching store backends
- Storage may be stale or corrupted
- Starting over on a new machine

Examples:
  # Clear SQLite stores (default)
  inkwell store clear

  # Clear MySQL stores (set connection string via env variable)
  INKWELL_STORE_BACKEND=mysql INKWELL_STORE_DB_CONNECT="..." inkwell store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearState(cfg.StoreBackend, iocache.GetStateDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear state store", err)
		}
		if err := iocache.ClearContentCache(cfg.StoreBackend, iocache.GetCacheDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear content cache", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the state store and content cache.

Displays:
- Backend type and connection status
- Retained days, change entries, and snapshot size
- Streak counters and last write time
- Content cache entry counts and timestamps

Examples:
  # Check store status
  inkwell store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetStateStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}

		var cacheStatus *schema.CacheStatus
		if contentStore := iocache.Manager.GetContentStore(); contentStore != nil {
			cs, err := contentStore.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get cache status", err)
			}
			cacheStatus = &cs
		}

		if err := outwriter.PrintStoreStatus(status, cacheStatus, cfg); err != nil {
			contract.LogFatal("Failed to print store status", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the state store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the persistence layer.

Migrations allow:
- Upgrading to new schema versions when Inkwell is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  inkwell store migrate

  # Migrate to specific version
  inkwell store migrate --target-version 1

  # Rollback everything
  inkwell store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateState(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
