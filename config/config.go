package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"quantor/repository"
)

// DefaultPath is read when no --config flag is given. A missing file is not an error.
const DefaultPath = "quantor.yaml"

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	RateLimit struct {
		Capacity int           `yaml:"capacity"`
		Window   time.Duration `yaml:"window"`
	} `yaml:"rate_limit"`
	Theme struct {
		Store      string `yaml:"store"` // memory, redis or sqlite
		RedisAddr  string `yaml:"redis_addr"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"theme"`
	Notification struct {
		Delay time.Duration `yaml:"delay"`
	} `yaml:"notification"`
	Log struct {
		Level   string `yaml:"level"`
		Format  string `yaml:"format"`
		Tracing bool   `yaml:"tracing"`
	} `yaml:"log"`
}

// Load reads .env and the YAML file at path, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("QUANTOR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("QUANTOR_THEME_STORE"); v != "" {
		c.Theme.Store = v
	}
	if v := os.Getenv("QUANTOR_REDIS_ADDR"); v != "" {
		c.Theme.RedisAddr = v
	}
	if v := os.Getenv("QUANTOR_SQLITE_PATH"); v != "" {
		c.Theme.SQLitePath = v
	}
	if v := os.Getenv("QUANTOR_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("QUANTOR_RATE_LIMIT: %w", err)
		}
		c.RateLimit.Capacity = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("LOG_TRACING_ENABLED"); v != "" {
		c.Log.Tracing = v == "true"
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 60
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
	if c.Theme.Store == "" {
		c.Theme.Store = repository.BackendMemory
	}
	if c.Theme.RedisAddr == "" {
		c.Theme.RedisAddr = "localhost:6379"
	}
	if c.Theme.SQLitePath == "" {
		c.Theme.SQLitePath = "quantor.db"
	}
	if c.Notification.Delay == 0 {
		c.Notification.Delay = 3 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) Validate() error {
	switch c.Theme.Store {
	case repository.BackendMemory, repository.BackendRedis, repository.BackendSQLite:
	default:
		return fmt.Errorf("invalid theme.store '%s': must be 'memory', 'redis' or 'sqlite'", c.Theme.Store)
	}
	if c.RateLimit.Capacity < 0 {
		return fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.Notification.Delay < 0 {
		return errors.New("notification.delay cannot be negative")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log.format '%s': must be 'json' or 'text'", c.Log.Format)
	}
	return nil
}

// StoreOptions maps the theme section to repository options.
func (c *Config) StoreOptions() repository.StoreOptions {
	return repository.StoreOptions{
		Backend:    c.Theme.Store,
		RedisAddr:  c.Theme.RedisAddr,
		SQLitePath: c.Theme.SQLitePath,
	}
}
