package port

import (
	"context"
)

// Store is the durable key/value surface collections persist to.
// One JSON blob per key; implementations must treat values as opaque.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
