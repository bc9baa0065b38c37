package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const DatabaseFilepathEnv = "DATABASE_FILEPATH"

const DefaultDatabasePath = "spreadsheet.db"

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Webhooks WebhooksConfig `toml:"webhooks"`
}

type ServerConfig struct {
	Listen string `toml:"listen"`
}

type StorageConfig struct {
	DatabasePath string `toml:"database_path"`
}

type WebhooksConfig struct {
	Workers        int `toml:"workers"`
	TimeoutSeconds int `toml:"timeout_seconds"`
	QueueSize      int `toml:"queue_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Storage: StorageConfig{
			DatabasePath: DefaultDatabasePath,
		},
		Webhooks: WebhooksConfig{
			Workers:        5,
			TimeoutSeconds: 5,
			QueueSize:      20,
		},
	}
}

// LoadConfig reads configPath on top of the defaults. A missing file is not an
// error; DATABASE_FILEPATH overrides the database path from the file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		if err == nil {
			if err = toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}
	}

	if databasePath := os.Getenv(DatabaseFilepathEnv); databasePath != "" {
		config.Storage.DatabasePath = databasePath
	}

	if config.Storage.DatabasePath == "" {
		config.Storage.DatabasePath = DefaultDatabasePath
	}

	config.Webhooks.normalize()
	return config, nil
}

func (c *WebhooksConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *WebhooksConfig) normalize() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TimeoutSeconds < 1 {
		c.TimeoutSeconds = 1
	}
	if c.QueueSize < 0 {
		c.QueueSize = 0
	}
}
