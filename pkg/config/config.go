// ==============================================================================
// CONFIG PACKAGE - pkg/config/config.go
// ==============================================================================
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Schema     SchemaConfig
	Migrations MigrationsConfig
	Security   SecurityConfig
	Log        LogConfig
}

type DatabaseConfig struct {
	Host           string        `validate:"required"`
	Port           int           `validate:"required,min=1,max=65535"`
	User           string        `validate:"required"`
	Password       string
	Name           string        `validate:"required,sql_identifier"`
	Charset        string        `validate:"required"`
	ConnectTimeout time.Duration `validate:"gte=0"`
}

type SchemaConfig struct {
	File string `validate:"required"`
}

type MigrationsConfig struct {
	Path string `validate:"required"`
}

type SecurityConfig struct {
	BcryptCost int `validate:"min=4,max=31"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=json text"`
	File   string
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getIntEnv("DB_PORT", 3306),
			User:           getEnv("DB_USER", "admin"),
			Password:       lookupEnv("DB_PASSWORD", "admin"),
			Name:           getEnv("DB_NAME", "academia_veritas"),
			Charset:        getEnv("DB_CHARSET", "utf8mb4"),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Schema: SchemaConfig{
			File: getEnv("SCHEMA_FILE", "schema/database_schema.sql"),
		},
		Migrations: MigrationsConfig{
			Path: getEnv("MIGRATIONS_PATH", "file://migrations"),
		},
		Security: SecurityConfig{
			BcryptCost: getIntEnv("BCRYPT_COST", 10),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
			File:   getEnv("LOG_FILE", ""),
		},
	}
}

// LoadEnvFile loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Variables already set win.
func LoadEnvFile(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv is getEnv for values where empty is meaningful: only an unset
// variable falls back to the default.
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
