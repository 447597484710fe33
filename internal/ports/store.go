package ports

import (
	"context"
	"errors"

	"tally/internal/domain"
)

// KeyValueStore is an opaque persistent map of named serialized values.
// Values survive process restarts.
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// SetMany stores several keys at once. Backends that support transactions
	// apply all of them or none.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Close releases the underlying resources
	Close() error
}

// ErrNoState is returned by StateStore.Load when nothing has been saved yet
var ErrNoState = errors.New("no stored state")

// StateStore loads and saves the whole board
type StateStore interface {
	Load(ctx context.Context) (*domain.Board, error)
	Save(ctx context.Context, board *domain.Board) error
}
