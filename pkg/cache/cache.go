// Package cache stores rendered figures keyed by the content that produced
// them.
//
// A rendered artifact depends only on the scene, the style and the output
// format, so the pipeline hashes all three into a key and skips rendering
// on a hit. Three backends implement [Cache]:
//
//   - [FileCache]: one file per entry under the user cache directory, for
//     the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: never stores anything, for tests and --no-cache
//
// Keys come from a [Keyer]; [ScopedKeyer] prefixes them so several servers
// can share one Redis.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered figure stays cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}
