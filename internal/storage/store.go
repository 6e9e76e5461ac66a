// Package storage persists BiteAI state as a key→JSON document store,
// mirroring the storage layout of the web client: one value per key,
// read and written whole.
//
// Keys in use:
//
//	auth:users     registered-user table (email → record)
//	auth:session   the single active session
//	state:<email>  per-user tracking state; state:anonymous when signed out
package storage

import "context"

// Store is a durable key→value store. Values are JSON documents; the store
// itself treats them as opaque bytes.
type Store interface {
	// Get returns the value at key, or common.ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value at key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Update atomically replaces the value at key with the result of fn.
	// fn receives the current value (nil when absent) and returns the new
	// value. If fn returns an error, nothing is written and the error is
	// returned to the caller unchanged.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
