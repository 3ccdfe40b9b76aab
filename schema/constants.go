package schema

// Custom string types for type safety.
type (
	// ChangeAction tags a change-log entry with the kind of mutation.
	ChangeAction string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All change actions supported. Only AddAction is produced by the
// analysis pipeline today; DeleteAction is reserved for future flows.
const (
	AddAction    ChangeAction = "add"
	DeleteAction ChangeAction = "delete"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All persistence backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// DateKeyFormat is the layout of a daily stat date key.
const DateKeyFormat = "2006-01-02"

// MaxChangeLogEntries caps the per-day change log. When the cap is
// exceeded, the oldest entries are dropped first.
const MaxChangeLogEntries = 100

// DefaultRetentionDays is how far back day records are kept when a
// snapshot is loaded from storage.
const DefaultRetentionDays = 30

// SnapshotVersion is the current version of the persisted snapshot blob.
const SnapshotVersion = 1

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid persistence backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
