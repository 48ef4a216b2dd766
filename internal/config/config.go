// Package config loads server configuration from flags, RPG_* environment
// variables and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// EnvPrefix prefixes every environment override, e.g. RPG_STORAGE_DRIVER
const EnvPrefix = "RPG"

// HTTPConfig holds listener settings.
type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the "host:port" listen address.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// StorageConfig selects and configures the character store.
type StorageConfig struct {
	// Driver is "sqlite" or "redis".
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RedisAddr  string `mapstructure:"redis_addr"`
	RedisDB    int    `mapstructure:"redis_db"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is json or text.
	Format string `mapstructure:"format"`
}

// Config is the top-level server configuration.
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// Validate reports every invalid setting in one error.
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("http.port", c.HTTP.Port, 1, 65535, vb)
	if c.HTTP.ReadTimeout < 0 {
		vb.Field("http.read_timeout", "must not be negative")
	}
	if c.HTTP.WriteTimeout < 0 {
		vb.Field("http.write_timeout", "must not be negative")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		vb.Field("http.shutdown_timeout", "must be positive")
	}

	errors.ValidateEnum("storage.driver", c.Storage.Driver, []string{DriverSQLite, DriverRedis}, vb)
	switch c.Storage.Driver {
	case DriverSQLite:
		errors.ValidateRequired("storage.sqlite_path", c.Storage.SQLitePath, vb)
	case DriverRedis:
		errors.ValidateRequired("storage.redis_addr", c.Storage.RedisAddr, vb)
		if c.Storage.RedisDB < 0 {
			vb.Field("storage.redis_db", "must not be negative")
		}
	}

	errors.ValidateEnum("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"json", "text"}, vb)

	return vb.Build()
}

// NewViper returns a viper instance with defaults and RPG_* environment
// overrides applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// BindFlags maps command line flags onto config keys. flagToKey is keyed
// by flag name; flags missing from fs are ignored.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, flagToKey map[string]string) error {
	for name, key := range flagToKey {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file, unmarshals and validates.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "15s")
	v.SetDefault("http.shutdown_timeout", "30s")

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "characters.db")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
