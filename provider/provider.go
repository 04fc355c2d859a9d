// Package provider defines the byte stores store.Texts persists framed LZY
// records into.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key. A store that
// compresses or re-encodes internally must fully reverse it. LZY payloads
// self-synchronize, so a store that drops leading bytes would not be caught
// by decoding alone; records are framed with a code point count for that.
//
// The keyspace "text:<ns>:" is owned by store.Texts. Foreign writes under it
// are treated as corruption and deleted on read.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort). Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
