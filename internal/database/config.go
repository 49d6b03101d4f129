package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the PostgreSQL connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig reads connection settings from the environment. A missing .env
// file is fine; plain environment variables and defaults still apply.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "fintrack"),
		Password: envOr("DB_PASSWORD", "fintrack"),
		DBName:   envOr("DB_NAME", "fintrack"),
		SSLMode:  envOr("DB_SSLMODE", "disable"),
	}, nil
}

// DSN returns the keyword/value connection string for the GORM driver.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
