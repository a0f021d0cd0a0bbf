// Package store provides durable account snapshots keyed by session.
package store

import (
	"context"

	"paper-exchange/internal/models"
)

// Store persists one account snapshot per session key. Snapshots are written
// whole after a committed state change and read back whole at session start.
type Store interface {
	// Load returns the snapshot for a session key, or (nil, nil) when the
	// key has never been saved.
	Load(ctx context.Context, key string) (*models.AccountState, error)

	// Save replaces the snapshot for a session key.
	Save(ctx context.Context, key string, state models.AccountState) error

	// Close releases the underlying resources.
	Close() error
}
