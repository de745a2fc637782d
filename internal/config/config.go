// Package config loads the storefront-core settings file, falling back to
// defaults whenever the file is missing or unreadable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// StorageDriver selects the persistence backend.
type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverFile     StorageDriver = "file"
	DriverPostgres StorageDriver = "postgres"
)

type Config struct {
	Storage   Storage
	Debounce  Debounce
	Simulator Simulator
	Currency  string
}

type Storage struct {
	Driver StorageDriver
	Dir    string // file driver
	DSN    string // postgres driver
}

type Debounce struct {
	Window time.Duration
}

type Simulator struct {
	ConfirmedAfter  time.Duration
	ProcessingAfter time.Duration
	ShippedAfter    time.Duration
}

const (
	defaultConfigPath = "~/.config/storefront-core/config.toml"
	defaultStateDir   = "~/.local/share/storefront-core"
	defaultCurrency   = "PKR"
)

func defaults() Config {
	return Config{
		Storage:  Storage{Driver: DriverFile, Dir: mustExpand(defaultStateDir)},
		Debounce: Debounce{Window: 300 * time.Millisecond},
		Simulator: Simulator{
			ConfirmedAfter:  3 * time.Second,
			ProcessingAfter: 8 * time.Second,
			ShippedAfter:    15 * time.Second,
		},
		Currency: defaultCurrency,
	}
}

type rawConfig struct {
	Storage struct {
		Driver string `toml:"driver"`
		Dir    string `toml:"dir"`
		DSN    string `toml:"dsn"`
	} `toml:"storage"`
	Debounce struct {
		WindowMS int64 `toml:"window_ms"`
	} `toml:"debounce"`
	Simulator struct {
		ConfirmedAfterMS  int64 `toml:"confirmed_after_ms"`
		ProcessingAfterMS int64 `toml:"processing_after_ms"`
		ShippedAfterMS    int64 `toml:"shipped_after_ms"`
	} `toml:"simulator"`
	Currency string `toml:"currency"`
}

// Load parses the config at path (the default location when path is empty).
// A missing file yields defaults; an unreadable or unparsable one does too.
func Load(path string) (Config, error) {
	cfg := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg, nil
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, nil // graceful degradation
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return cfg, nil // graceful degradation
	}

	switch StorageDriver(strings.TrimSpace(raw.Storage.Driver)) {
	case DriverMemory:
		cfg.Storage.Driver = DriverMemory
	case DriverPostgres:
		cfg.Storage.Driver = DriverPostgres
	case DriverFile:
		cfg.Storage.Driver = DriverFile
	}

	if dir := strings.TrimSpace(raw.Storage.Dir); dir != "" {
		cfg.Storage.Dir = mustExpand(dir)
	}
	if dsn := strings.TrimSpace(raw.Storage.DSN); dsn != "" {
		cfg.Storage.DSN = dsn
	}

	if raw.Debounce.WindowMS > 0 {
		cfg.Debounce.Window = time.Duration(raw.Debounce.WindowMS) * time.Millisecond
	}
	if raw.Simulator.ConfirmedAfterMS > 0 {
		cfg.Simulator.ConfirmedAfter = time.Duration(raw.Simulator.ConfirmedAfterMS) * time.Millisecond
	}
	if raw.Simulator.ProcessingAfterMS > 0 {
		cfg.Simulator.ProcessingAfter = time.Duration(raw.Simulator.ProcessingAfterMS) * time.Millisecond
	}
	if raw.Simulator.ShippedAfterMS > 0 {
		cfg.Simulator.ShippedAfter = time.Duration(raw.Simulator.ShippedAfterMS) * time.Millisecond
	}

	if code := strings.TrimSpace(raw.Currency); code != "" {
		cfg.Currency = code
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
