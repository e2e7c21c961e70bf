// Package cache provides content-addressed storage for rendered chart
// artifacts.
//
// The HTTP service renders the same chart for every identical request, so
// artifacts are cached under a key derived from the request body: same
// tasks, same options, same bytes out. Three backends are provided:
//
//   - [Memory]: in-process map, for single-instance serving and tests
//   - [File]: one file per entry under a directory, for CLI re-runs
//   - [Redis]: shared cache for multi-instance deployments
//
// All backends expire entries after a TTL and treat corrupt or expired
// entries as misses. A miss is never an error.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// DefaultTTL is the artifact lifetime used when callers pass no TTL.
// Artifacts are cheap to recompute; the cache exists to absorb bursts.
const DefaultTTL = 24 * time.Hour

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get returns the artifact for key. The second result reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an artifact under key for ttl. A non-positive ttl uses
	// DefaultTTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey derives the cache key for a render request: the output format
// namespaced onto a SHA-256 digest of the request payload.
func ArtifactKey(format string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return "chart:" + format + ":" + hex.EncodeToString(sum[:])
}

func effectiveTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
