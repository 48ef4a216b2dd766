package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

func validConfig() config.Config {
	return config.Config{
		HTTP: config.HTTPConfig{
			Host:            "127.0.0.1",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: config.StorageConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: "characters.db",
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "characters.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RPG_STORAGE_DRIVER", "redis")
	t.Setenv("RPG_STORAGE_REDIS_ADDR", "cache:6380")
	t.Setenv("RPG_STORAGE_REDIS_DB", "3")
	t.Setenv("RPG_HTTP_PORT", "9090")

	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Storage.RedisAddr)
	assert.Equal(t, 3, cfg.Storage.RedisDB)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.Int("port", 8000, "")
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--port", "7000", "--log-level", "debug"}))

	v := config.NewViper()
	require.NoError(t, config.BindFlags(v, fs, map[string]string{
		"port":      "http.port",
		"log-level": "log.level",
		"missing":   "http.host",
	}))

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 8123
storage:
  driver: sqlite
  sqlite_path: /tmp/chars.db
log:
  format: text
`), 0o600))

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.HTTP.Port)
	assert.Equal(t, "/tmp/chars.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0
	cfg.HTTP.ShutdownTimeout = 0
	cfg.Storage.Driver = "postgres"
	cfg.Log.Level = "trace"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	for _, key := range []string{"http.port", "http.shutdown_timeout", "storage.driver", "log.level", "log.format"} {
		assert.Contains(t, fields, key)
	}
}

func TestValidateRedisRequiresAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = config.DriverRedis
	cfg.Storage.RedisAddr = ""
	cfg.Storage.RedisDB = -1

	err := cfg.Validate()
	require.Error(t, err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	assert.Contains(t, fields, "storage.redis_addr")
	assert.Contains(t, fields, "storage.redis_db")
}

func TestValidatePortProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		port := rapid.IntRange(-1000, 70000).Draw(rt, "port")
		cfg := validConfig()
		cfg.HTTP.Port = port

		err := cfg.Validate()
		if port >= 1 && port <= 65535 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
