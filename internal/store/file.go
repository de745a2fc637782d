package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikolayk812/storefront-core/internal/port"
)

type fileStore struct {
	dir string
}

// NewFile returns a Store writing one file per key under dir,
// creating the directory as needed.
func NewFile(dir string) (port.Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("dir is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}

	return value, true, nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is empty")
	}

	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is empty")
	}

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}

	return nil
}
