package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nikolayk812/storefront-core/internal/port"
)

// Adapter wraps a port.Store with the never-fail JSON contract the
// collection managers rely on: Load falls back to the caller's default on
// absence, store failure or corrupt JSON; Save and Remove log failures
// instead of returning them. In-memory state stays authoritative either way.
type Adapter struct {
	store  port.Store
	logger *slog.Logger
}

func NewAdapter(store port.Store, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Adapter{store: store, logger: logger}
}

// Load reads and decodes the blob at key, returning def when there is
// nothing usable there.
func Load[T any](ctx context.Context, a *Adapter, key string, def T) T {
	value, ok, err := a.store.Get(ctx, key)
	if err != nil {
		a.logger.Warn("store load failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}

	var decoded T
	if err := json.Unmarshal(value, &decoded); err != nil {
		a.logger.Warn("store blob corrupt, using default", "key", key, "error", err)
		return def
	}

	return decoded
}

// Save encodes v and writes the full snapshot at key. It completes before
// returning, so a Load of the same key in the same turn observes it.
func Save[T any](ctx context.Context, a *Adapter, key string, v T) {
	value, err := json.Marshal(v)
	if err != nil {
		a.logger.Warn("store encode failed, snapshot not persisted", "key", key, "error", err)
		return
	}

	if err := a.store.Set(ctx, key, value); err != nil {
		a.logger.Warn("store save failed, keeping in-memory state", "key", key, "error", err)
	}
}

func (a *Adapter) Remove(ctx context.Context, key string) {
	if err := a.store.Delete(ctx, key); err != nil {
		a.logger.Warn("store remove failed", "key", key, "error", err)
	}
}
