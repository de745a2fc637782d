package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-core/internal/port"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Store backed by the kv_state table,
// see internal/store/migrations.
func NewPostgres(pool *pgxpool.Pool) (port.Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_state (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE
		 SET value = EXCLUDED.value, updated_at = now()`, key, value)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := s.pool.Exec(ctx, `DELETE FROM kv_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
