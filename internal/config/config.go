package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"thesaurus/internal/tokenizer"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite3"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	BotLocale   string
	Database    DatabaseConfig
	Reader      ReaderConfig
	Health      HealthConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SQLitePath     string
	MigrationsPath string
}

// ReaderConfig holds the defaults of a reading session
type ReaderConfig struct {
	WordChars   string
	ForeignLang string
	NativeLang  string
}

// HealthConfig controls the vocabulary store liveness check
type HealthConfig struct {
	Interval    time.Duration
	MaxFailures int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads configuration from environment variables without checking
// the database settings, so callers can override them first
func Read() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		BotLocale:   getEnv("BOT_LOCALE", "ru"),
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", DriverPostgres),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			Name:           getEnv("DB_NAME", "thesaurus"),
			User:           getEnv("DB_USER", "thesaurus"),
			Password:       os.Getenv("DB_PASSWORD"),
			SQLitePath:     getEnv("SQLITE_PATH", "thesaurus.db"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Reader: ReaderConfig{
			WordChars:   getEnv("READER_WORD_CHARS", tokenizer.DefaultWordChars),
			ForeignLang: os.Getenv("FOREIGN_LANG"),
			NativeLang:  os.Getenv("NATIVE_LANG"),
		},
	}

	interval, err := time.ParseDuration(getEnv("HEALTH_INTERVAL", "30s"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("HEALTH_INTERVAL must be a positive duration")
	}
	cfg.Health.Interval = interval

	maxFailures, err := strconv.Atoi(getEnv("HEALTH_MAX_FAILURES", "3"))
	if err != nil || maxFailures <= 0 {
		return nil, fmt.Errorf("HEALTH_MAX_FAILURES must be a positive number")
	}
	cfg.Health.MaxFailures = maxFailures

	return cfg, nil
}

// Validate checks the database settings
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverPgx:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported", c.Database.Driver)
	}
	return nil
}

// LoadBot reads configuration and requires the bot credentials
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == DriverSQLite {
		return c.Database.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
