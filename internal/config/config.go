package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Tracker TrackerConfig `yaml:"tracker"`
}

type StorageConfig struct {
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"`
	Redis   RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TrackerConfig struct {
	DefaultRequiredAttendance int           `yaml:"default_required_attendance"`
	ReminderLead              time.Duration `yaml:"reminder_lead"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "attend:",
			},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Tracker: TrackerConfig{
			DefaultRequiredAttendance: 75,
			ReminderLead:              15 * time.Minute,
		},
	}
}

// DefaultPath is ~/.attend/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".attend", "config.yaml")
}

// Load reads the YAML file at path (ATTEND_CONFIG, then DefaultPath, when
// path is empty) over the defaults, then applies environment overrides. A
// missing file is not an error. A .env file in the working directory is
// loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("ATTEND_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Storage.Backend = getEnv("ATTEND_STORAGE_BACKEND", c.Storage.Backend)
	c.Storage.Path = getEnv("ATTEND_DB_PATH", c.Storage.Path)
	c.Storage.Redis.Addr = getEnv("ATTEND_REDIS_ADDR", c.Storage.Redis.Addr)
	c.Storage.Redis.Password = getEnv("ATTEND_REDIS_PASSWORD", c.Storage.Redis.Password)
	c.Logging.Level = getEnv("ATTEND_LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("ATTEND_LOG_FORMAT", c.Logging.Format)

	if v := os.Getenv("ATTEND_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ATTEND_REDIS_DB %q: %w", v, err)
		}
		c.Storage.Redis.DB = n
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if r := c.Tracker.DefaultRequiredAttendance; r < 0 || r > 100 {
		return fmt.Errorf("default_required_attendance must be between 0 and 100, got %d", r)
	}
	if c.Tracker.ReminderLead < 0 {
		return fmt.Errorf("reminder_lead must not be negative")
	}
	return nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
