package config

import (
	"os"
)

// DefaultAppID is the tenant identifier used when the runtime does not
// inject one via APP_ID.
const DefaultAppID = "default-app-id"

type Config struct {
	Environment string
	ServerPort  string
	AppID       string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("PORT", "8080"),
		AppID:       getEnv("APP_ID", DefaultAppID),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "courseboard"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}
}

// ConnString builds the postgres connection string, preferring a full
// DATABASE_URL over the discrete DB_* variables.
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "postgresql://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
