package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults_without_file", func(t *testing.T) {
		t.Setenv(DatabaseFilepathEnv, "")

		config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))

		assert.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
		assert.Equal(t, "spreadsheet.db", config.Storage.DatabasePath)
	})

	t.Run("empty_database_path_uses_default", func(t *testing.T) {
		t.Setenv(DatabaseFilepathEnv, "")
		configPath := _writeConfig(t, "[storage]\ndatabase_path = \"\"\n")

		config, err := LoadConfig(configPath)

		assert.NoError(t, err)
		assert.Equal(t, DefaultDatabasePath, config.Storage.DatabasePath)
	})

	t.Run("file_values", func(t *testing.T) {
		configPath := _writeConfig(t, `
[server]
listen = "127.0.0.1:9000"

[storage]
database_path = "/tmp/spreadsheet.db"

[webhooks]
workers = 2
timeout_seconds = 10
`)

		config, err := LoadConfig(configPath)

		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", config.Server.Listen)
		assert.Equal(t, "/tmp/spreadsheet.db", config.Storage.DatabasePath)
		assert.Equal(t, 2, config.Webhooks.Workers)
		assert.Equal(t, 10*time.Second, config.Webhooks.Timeout())
		assert.Equal(t, 20, config.Webhooks.QueueSize)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		configPath := _writeConfig(t, "[storage]\ndatabase_path = \"from_file.db\"\n")
		t.Setenv(DatabaseFilepathEnv, "from_env.db")

		config, err := LoadConfig(configPath)

		assert.NoError(t, err)
		assert.Equal(t, "from_env.db", config.Storage.DatabasePath)
	})

	t.Run("invalid_values_are_raised", func(t *testing.T) {
		configPath := _writeConfig(t, "[webhooks]\nworkers = 0\ntimeout_seconds = -3\nqueue_size = -1\n")

		config, err := LoadConfig(configPath)

		assert.NoError(t, err)
		assert.Equal(t, 1, config.Webhooks.Workers)
		assert.Equal(t, 1, config.Webhooks.TimeoutSeconds)
		assert.Equal(t, 0, config.Webhooks.QueueSize)
	})

	t.Run("malformed_file", func(t *testing.T) {
		configPath := _writeConfig(t, "[server\nlisten = ")

		config, err := LoadConfig(configPath)

		assert.Error(t, err)
		assert.Nil(t, config)
	})
}

func _writeConfig(t *testing.T, content string) string {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configPath
}
