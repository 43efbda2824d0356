// Package config defines the board server configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":3000"
}

// StorageConfig controls where the board is persisted.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite file, or ":memory:"
	Key  string `yaml:"key"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":3000",
		},
		Storage: StorageConfig{
			Path: "./tasks.db",
			Key:  "quadrant-tasks",
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error and yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
