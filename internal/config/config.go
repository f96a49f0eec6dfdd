package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration.
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Share    ShareConfig    `toml:"share"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Backend is one of "sqlite", "redis", "memory".
	Backend string `toml:"backend"`
}

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type RedisConfig struct {
	Addr string `toml:"addr"`
}

// ShareConfig controls how share links are rendered.
type ShareConfig struct {
	BaseURL string `toml:"base_url"`
}

// Default returns the default configuration.
func Default() *Config {
	cfgDir, _ := os.UserConfigDir()
	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(cfgDir, "todoflow", "app.db"),
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Share: ShareConfig{
			BaseURL: "https://todoflow.app",
		},
	}
}

// Load loads configuration from the standard location.
func Load() (*Config, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return LoadFrom(filepath.Join(cfgDir, "todoflow", "config.toml"))
}

// LoadFrom loads configuration from a specific path, falling back to
// defaults when the file does not exist.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	switch cfg.Store.Backend {
	case "", BackendSQLite, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendSQLite
	}
	if cfg.Database.Path != "" {
		cfg.Database.Path = expandPath(cfg.Database.Path)
	}
	return cfg, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
