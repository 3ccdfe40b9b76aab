package core

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/inkwellhq/inkwell/internal/contract"
)

// currentCacheVersion defines the version of the content cache schema
const currentCacheVersion = 1

// cachedRead returns document content for sourceID, consulting the
// advisory content cache when enabled. The cache is never a source of
// truth: a miss, a stale entry or any cache failure falls back to
// reading the source directly.
func cachedRead(ctx context.Context, cfg *contract.Config, source contract.ContentSource, mgr contract.StoreManager, sourceID string) (string, error) {
	if !cfg.EnableCache || mgr == nil {
		return source.Read(ctx, sourceID)
	}
	store := mgr.GetContentStore()
	if store == nil {
		return source.Read(ctx, sourceID)
	}

	key := generateCacheKey(sourceID)

	// Check for cache hit
	if text, ok := checkCacheHit(store, key, cfg.CacheTTL); ok {
		return text, nil
	}

	// Cache miss: read and store
	return readAndStore(ctx, source, store, key, sourceID)
}

// checkCacheHit attempts to retrieve a fresh cached copy of the content
func checkCacheHit(store contract.CacheStore, key string, ttl time.Duration) (string, bool) {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return "", false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= ttl {
			return string(data), true // Cache hit
		}
	}

	return "", false // Cache miss (stale or version mismatch)
}

// readAndStore reads the content from the source and stores it in cache
func readAndStore(ctx context.Context, source contract.ContentSource, store contract.CacheStore, key, sourceID string) (string, error) {
	text, err := source.Read(ctx, sourceID)
	if err != nil {
		return "", err
	}

	// Store in cache; failures here never fail the read
	_ = store.Set(key, []byte(text), currentCacheVersion, time.Now().Unix())

	return text, nil
}

// generateCacheKey creates a unique key for a source identifier
func generateCacheKey(sourceID string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(sourceID)))
}
