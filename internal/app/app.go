// Package app wires the commerce core together: config → store → collection
// managers → lifecycle simulator. Everything is injected explicitly; there
// are no package-level singletons, and teardown is Close.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-core/internal/cart"
	"github.com/nikolayk812/storefront-core/internal/catalog"
	"github.com/nikolayk812/storefront-core/internal/config"
	"github.com/nikolayk812/storefront-core/internal/debounce"
	"github.com/nikolayk812/storefront-core/internal/domain"
	"github.com/nikolayk812/storefront-core/internal/lifecycle"
	"github.com/nikolayk812/storefront-core/internal/orders"
	"github.com/nikolayk812/storefront-core/internal/port"
	"github.com/nikolayk812/storefront-core/internal/store"
	"github.com/nikolayk812/storefront-core/internal/wishlist"
)

type Core struct {
	Cart      *cart.Manager
	Wishlist  *wishlist.Manager
	Orders    *orders.Manager
	Simulator *lifecycle.Simulator
	View      *catalog.View

	debounceWindow time.Duration
	pool           *pgxpool.Pool
}

// New builds the core from config. Collections hydrate once, here.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Core, error) {
	if logger == nil {
		logger = slog.Default()
	}

	backing, pool, err := newStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("newStore: %w", err)
	}

	adapter := store.NewAdapter(backing, logger)

	orderManager := orders.NewManager(ctx, adapter)

	steps := lifecycle.DefaultSteps()
	steps[0].After = cfg.Simulator.ConfirmedAfter
	steps[1].After = cfg.Simulator.ProcessingAfter
	steps[2].After = cfg.Simulator.ShippedAfter

	return &Core{
		Cart:           cart.NewManager(ctx, adapter),
		Wishlist:       wishlist.NewManager(ctx, adapter),
		Orders:         orderManager,
		Simulator:      lifecycle.New(orderManager, steps, logger),
		View:           catalog.NewView(nil),
		debounceWindow: cfg.Debounce.Window,
		pool:           pool,
	}, nil
}

// QueryDebouncer returns a debouncer collapsing bursty query input into one
// settled pipeline run per quiet window; onResult receives the derived view.
// The caller owns the returned handle and must Cancel it on teardown.
func (c *Core) QueryDebouncer(onResult func(catalog.Grouped)) *debounce.Debouncer[domain.FilterQuery] {
	return debounce.New(c.debounceWindow, func(q domain.FilterQuery) {
		onResult(c.View.Query(q))
	})
}

// Close cancels all scheduled timer work and releases the store.
func (c *Core) Close() {
	c.Simulator.Close()
	if c.pool != nil {
		c.pool.Close()
	}
}

func newStore(ctx context.Context, cfg config.Storage) (port.Store, *pgxpool.Pool, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return store.NewMemory(), nil, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		s, err := store.NewPostgres(pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("store.NewPostgres: %w", err)
		}
		return s, pool, nil

	case config.DriverFile:
		s, err := store.NewFile(cfg.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("store.NewFile: %w", err)
		}
		return s, nil, nil
	}

	return nil, nil, fmt.Errorf("storage driver[%s] is not valid", cfg.Driver)
}
