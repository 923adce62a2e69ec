package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	LogLevel string
	Storage  StorageConfig
	Database DatabaseConfig
	Bot      BotConfig
}

// StorageConfig selects where flashcards are persisted
type StorageConfig struct {
	Driver         string
	FilePath       string
	SQLitePath     string
	MigrationsPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// BotConfig holds Telegram bot settings
type BotConfig struct {
	Token    string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Storage: StorageConfig{
			Driver:         getEnv("STORAGE_DRIVER", DriverJSON),
			FilePath:       getEnv("FLASHCARDS_FILE", "flashcards.json"),
			SQLitePath:     getEnv("SQLITE_PATH", "flashcards.db"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcards"),
			User:     getEnv("DB_USER", "flashcards"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Bot: BotConfig{
			Token:    os.Getenv("BOT_TOKEN"),
			Password: os.Getenv("BOT_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks storage settings
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverJSON, DriverSQLite:
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

// ValidateBot checks the settings needed to run the Telegram bot
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Bot.Password == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// DataSource returns the driver-specific data source for SQL storage
func (c *Config) DataSource() string {
	if c.Storage.Driver == DriverSQLite {
		return c.Storage.SQLitePath
	}
	return c.DSN()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
