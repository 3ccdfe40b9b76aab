// Package iocache has the persistence layer: the durable state store
// and the advisory content cache.
package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// Table names for the persistence layer.
const (
	stateTable        = "inkwell_state"
	contentCacheTable = "inkwell_content_cache"
)

// StoreManagerImpl manages the state store and the content cache.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	state        contract.StateStore
	content      contract.CacheStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetStateStore returns the state StateStore.
func (mgr *StoreManagerImpl) GetStateStore() contract.StateStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.state
}

// GetContentStore returns the content CacheStore.
func (mgr *StoreManagerImpl) GetContentStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.content
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetStateDBFilePath returns the path to the SQLite DB file for state storage.
func GetStateDBFilePath() string {
	return contract.GetStateDBFilePath()
}

// GetCacheDBFilePath returns the path to the SQLite DB file for content caching.
func GetCacheDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// InitStores initializes the global store manager with the state store
// and, when caching is enabled, the content cache. Both use the
// configured backend; the content cache lives in its own table and,
// for SQLite, its own file.
func InitStores(cfg *contract.Config) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		stateStore, err := NewStateStore(stateTable, cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize state store: %w", err)
			return
		}

		var contentStore contract.CacheStore
		if cfg.EnableCache {
			cacheConnStr := cfg.StoreDBConnect
			if cfg.StoreBackend == schema.SQLiteBackend {
				cacheConnStr = "" // Separate default file, not the state DB
			}
			contentStore, err = NewCacheStore(contentCacheTable, cfg.StoreBackend, cacheConnStr)
			if err != nil {
				_ = stateStore.Close()
				initErr = fmt.Errorf("failed to initialize content cache: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.Lock()
		defer Manager.Unlock()
		Manager.state = stateStore
		Manager.content = contentStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.state != nil {
			_ = Manager.state.Close()
		}
		if Manager.content != nil {
			_ = Manager.content.Close()
		}
	})
}

// ClearContentCache clears the content cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearContentCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return removeDBFile(dbFilePath)

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, contentCacheTable, backend)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, contentCacheTable, backend)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// ClearState clears the persisted snapshot for the specified backend.
// The semantics match ClearContentCache.
func ClearState(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return removeDBFile(dbFilePath)

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, stateTable, backend)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, stateTable, backend)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// removeDBFile deletes a SQLite database file; a missing file is fine.
func removeDBFile(dbFilePath string) error {
	if dbFilePath == "" {
		return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
	}
	if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
	}
	return nil
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string, backend schema.DatabaseBackend) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
