// Package config loads calculator-api settings from a YAML file, environment
// variables and defaults, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName   = "calculator-api"
	envPrefix = "CALCULATOR_API"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

type HistoryConfig struct {
	// Driver is "memory" or "sqlite".
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	// MemoryCapacity bounds the in-memory history.
	MemoryCapacity int `mapstructure:"memory_capacity"`
}

type CacheConfig struct {
	// Driver is "memory" or "redis".
	Driver    string `mapstructure:"driver"`
	RedisAddr string `mapstructure:"redis_addr"`
}

type RatesConfig struct {
	RemoteEnabled bool          `mapstructure:"remote_enabled"`
	APIURL        string        `mapstructure:"api_url"`
	TTL           time.Duration `mapstructure:"ttl"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetries    int           `mapstructure:"max_retries"`
}

type SitemapConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Catalog is a YAML tool catalog; empty uses the built-in one.
	Catalog string `mapstructure:"catalog"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Config holds all configuration values.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	History   HistoryConfig   `mapstructure:"history"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Rates     RatesConfig     `mapstructure:"rates"`
	Sitemap   SitemapConfig   `mapstructure:"sitemap"`
	Log       LogConfig       `mapstructure:"log"`
}

// SetDefaults registers every key so environment overrides work without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("history.driver", "memory")
	v.SetDefault("history.sqlite_path", "calculator.db")
	v.SetDefault("history.memory_capacity", 1000)

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")

	v.SetDefault("rates.remote_enabled", false)
	v.SetDefault("rates.api_url", "https://api.coingecko.com/api/v3/simple/price")
	v.SetDefault("rates.ttl", 5*time.Minute)
	v.SetDefault("rates.timeout", 10*time.Second)
	v.SetDefault("rates.max_retries", 3)

	v.SetDefault("sitemap.base_url", "https://dapsiwow.com")
	v.SetDefault("sitemap.catalog", "")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "INFO")
}

// NewViper returns a viper instance reading cfgFile, or calculator-api.yaml
// from . and ~/.config/calculator-api, with CALCULATOR_API_* env overrides.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and decodes the merged settings.
// A missing file is not an error; an unreadable or invalid one is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.History.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("history.driver must be memory or sqlite, got %q", c.History.Driver)
	}
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.driver must be memory or redis, got %q", c.Cache.Driver)
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.capacity and rate_limit.window must be positive")
	}
	return nil
}

// LogLevel parses Log.Level, defaulting to INFO.
func (c Config) LogLevel() slog.Level {
	return parseLogLevel(c.Log.Level)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
