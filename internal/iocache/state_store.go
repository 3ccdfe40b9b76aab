package iocache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
)

// snapshotKey is the fixed row key for the single persisted snapshot.
const snapshotKey = "snapshot"

// StateStoreImpl persists the full daily statistics snapshot as one
// JSON blob in a key-value table, using various database backends.
// The NoneBackend variant keeps the snapshot in memory for the life of
// the process.
type StateStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend

	memory *schema.Snapshot // Only used by NoneBackend
}

var _ contract.StateStore = &StateStoreImpl{} // Compile-time check

// NewStateStore initializes and returns a new StateStore based on the backend type.
func NewStateStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.StateStore, error) {
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	// Memory-only store for the none backend
	if backend == schema.NoneBackend {
		return &StateStoreImpl{tableName: tableName, backend: backend}, nil
	}

	db, err := openBackendDB(backend, connStr, GetStateDBFilePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state store: %w", err)
	}

	query := getStateCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &StateStoreImpl{
		db:        db,
		tableName: tableName,
		backend:   backend,
	}, nil
}

// getStateCreateTableQuery returns the CREATE TABLE query for the given backend.
func getStateCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				state_key VARCHAR(255) PRIMARY KEY,
				state_value MEDIUMBLOB NOT NULL,
				state_version INT NOT NULL,
				state_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				state_key TEXT PRIMARY KEY,
				state_value BYTEA NOT NULL,
				state_version INTEGER NOT NULL,
				state_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				state_key TEXT PRIMARY KEY,
				state_value BLOB NOT NULL,
				state_version INTEGER NOT NULL,
				state_timestamp INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// LoadSnapshot returns the last written snapshot. A missing row yields
// a nil snapshot; a malformed blob is logged and discarded rather than
// surfaced, so corrupt storage never blocks tracking.
func (ss *StateStoreImpl) LoadSnapshot() (*schema.Snapshot, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return ss.memory, nil
	}

	blob, version, _, err := ss.readRow()
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if version > schema.SnapshotVersion {
		contract.LogWarn("state load", fmt.Errorf("snapshot version %d is newer than supported %d, starting empty", version, schema.SnapshotVersion))
		return nil, nil
	}

	var snap schema.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		contract.LogWarn("state load", fmt.Errorf("malformed snapshot blob, starting empty: %w", err))
		return nil, nil
	}
	return &snap, nil
}

// SaveSnapshot writes the full snapshot, replacing any previous one.
func (ss *StateStoreImpl) SaveSnapshot(snap *schema.Snapshot) error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		ss.memory = snap
		return nil
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = ss.db.Exec(ss.getUpsertQuery(), snapshotKey, blob, schema.SnapshotVersion, time.Now().Unix())
	return err
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *StateStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (state_key, state_value, state_version, state_timestamp) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE state_value = new.state_value, state_version = new.state_version, state_timestamp = new.state_timestamp`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (state_key, state_value, state_version, state_timestamp) VALUES ($1, $2, $3, $4)
			ON CONFLICT (state_key) DO UPDATE SET state_value = EXCLUDED.state_value, state_version = EXCLUDED.state_version, state_timestamp = EXCLUDED.state_timestamp`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (state_key, state_value, state_version, state_timestamp) VALUES (?, ?, ?, ?)`, quotedTableName)
	}
}

// readRow fetches the raw snapshot row.
func (ss *StateStoreImpl) readRow() ([]byte, int, int64, error) {
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	query := fmt.Sprintf(`SELECT state_value, state_version, state_timestamp FROM %s WHERE state_key = %s`,
		quotedTableName, getPlaceholder(ss.backend))

	var blob []byte
	var version int
	var ts int64
	if err := ss.db.QueryRow(query, snapshotKey).Scan(&blob, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return blob, version, ts, nil
}

// GetStatus returns status information about the state store.
func (ss *StateStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		fillSnapshotStatus(&status, ss.memory)
		return status, nil
	}

	blob, version, ts, err := ss.readRow()
	if errors.Is(err, sql.ErrNoRows) {
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("failed to read snapshot row: %w", err)
	}

	status.SchemaVersion = version
	status.LastWrite = time.Unix(ts, 0)
	status.BlobSizeBytes = int64(len(blob))

	var snap schema.Snapshot
	if err := json.Unmarshal(blob, &snap); err == nil {
		fillSnapshotStatus(&status, &snap)
	}
	return status, nil
}

// fillSnapshotStatus derives the day and streak figures from a snapshot.
func fillSnapshotStatus(status *schema.StoreStatus, snap *schema.Snapshot) {
	if snap == nil {
		return
	}
	status.DayCount = len(snap.Days)
	for _, day := range snap.Days {
		status.ChangeCount += len(day.Changes)
	}
	status.StreakCurrent = snap.Streak.Current
	status.StreakLongest = snap.Streak.Longest
}

// Close closes the underlying DB connection.
func (ss *StateStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}
