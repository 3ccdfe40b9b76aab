// Package contract provides interfaces and shared utilities for inkwell's internal architecture.
package contract

import (
	"context"

	"github.com/inkwellhq/inkwell/schema"
)

// ContentSource supplies raw document text for a source identifier.
// The analysis core never reads storage itself; this boundary allows the
// pipeline to be tested without touching the filesystem.
type ContentSource interface {
	// Read returns the raw text of the document identified by sourceID.
	Read(ctx context.Context, sourceID string) (string, error)
}

// StateStore persists the full snapshot of day records and streak data.
// The store treats the snapshot as an opaque blob; field-level hygiene
// happens on the loading side.
type StateStore interface {
	// LoadSnapshot returns the last written snapshot, or an empty
	// snapshot when nothing has been written yet.
	LoadSnapshot() (*schema.Snapshot, error)

	// SaveSnapshot writes the full snapshot, replacing any previous one.
	SaveSnapshot(snap *schema.Snapshot) error

	// GetStatus returns status information about the state store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// CacheStore is a versioned, timestamped key-value store backing the
// advisory content cache. This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// StoreManager bundles the state store and the content cache.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetStateStore() StateStore
	GetContentStore() CacheStore
}
