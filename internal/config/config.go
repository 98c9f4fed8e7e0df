package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Env           string
	StorageDriver string
	// ConflictRetries bounds how many times a club mutation is re-read and
	// re-applied after a concurrent write.
	ConflictRetries int
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Env:             getEnv("APP_ENV", "development"),
			StorageDriver:   getEnv("STORAGE_DRIVER", StorageDriverPostgres),
			ConflictRetries: getEnvInt("CLUB_CONFLICT_RETRIES", 3),
		},
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "clubs"),
			Password: getEnv("DB_PASSWORD", "clubs"),
			DBName:   getEnv("DB_NAME", "club_membership"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}
