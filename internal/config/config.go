package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. DUNGEON_SEED.
const EnvPrefix = "DUNGEON_"

// Config holds all configuration for dungeonsim.
type Config struct {
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
	Environment string `yaml:"environment" env:"ENVIRONMENT"` // development | production
	Seed        int64  `yaml:"seed" env:"SEED"`

	Database   DatabaseConfig `yaml:"database" envPrefix:"DB_"`
	Redis      RedisConfig    `yaml:"redis" envPrefix:"REDIS_"`
	Balance    Balance        `yaml:"balance" envPrefix:"BALANCE_"`
	Simulation Simulation     `yaml:"simulation" envPrefix:"SIM_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig configures the encounter journal.
type RedisConfig struct {
	Enabled    bool          `yaml:"enabled" env:"ENABLED"`
	URL        string        `yaml:"url" env:"URL"`
	JournalTTL time.Duration `yaml:"journal_ttl" env:"JOURNAL_TTL"`
	MaxEntries int           `yaml:"max_entries" env:"MAX_ENTRIES"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Environment: "development",
		Seed:        1,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "dungeon",
			Password: "dungeon",
			DBName:   "dungeon",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			URL:        "redis://127.0.0.1:6379/0",
			JournalTTL: 30 * time.Minute,
			MaxEntries: 200,
		},
		Balance:    DefaultBalance(),
		Simulation: DefaultSimulation(),
	}
}

// Load reads config from a YAML file and applies DUNGEON_* environment
// overrides. If the file doesn't exist, defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise produce nonsense results.
func (c Config) Validate() error {
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("environment must be development or production, got %q", c.Environment)
	}
	if err := c.Balance.Validate(); err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}
