// Package store defines the backing-store contracts consumed by multiread.
//
// Every store implements Store (single-key reads). Stores that can fetch many
// keys in one round trip additionally implement BatchStore. A BatchStore that
// cannot serve a particular request (unimplemented, wrong topology, etc.) must
// return an error matching ErrNotSupported so callers can fall back to single
// reads; any other error is treated as a real failure.
//
// Values are opaque bytes. A miss is reported as (nil, nil); stores must return
// a non-nil slice for a hit, even when the stored value is empty.
package store

import (
	"context"
	"errors"
)

// ErrNotSupported signals that a batch read cannot be served by this store.
// Wrap it (fmt.Errorf("...: %w", store.ErrNotSupported)) to add context.
var ErrNotSupported = errors.New("store: batch read not supported")

// Store is a key/value store with single-key reads.
// Implementations must be safe for concurrent use.
type Store interface {
	// Read returns the value for key; (nil, nil) on miss.
	Read(ctx context.Context, key string) ([]byte, error)
}

// BatchStore is a Store with a native multi-key read.
type BatchStore interface {
	Store

	// ReadMulti returns values for keys in one logical operation.
	// Returns an error matching ErrNotSupported when the batch path is unavailable.
	ReadMulti(ctx context.Context, keys []string) (map[string][]byte, error)
}

// Batched reports whether s exposes a native batch read.
func Batched(s Store) (BatchStore, bool) {
	bs, ok := s.(BatchStore)
	return bs, ok
}
