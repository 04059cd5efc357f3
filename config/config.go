package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server
	ServerPort string

	// DefaultUserID associates bookings with this user when the request
	// carries no identity. Test-only escape hatch; 0 disables it and
	// every use is logged.
	DefaultUserID int
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "railpass123"),
		DBName:     getEnv("DB_NAME", "railway"),

		ServerPort: getEnv("SERVER_PORT", "8080"),

		DefaultUserID: getEnvInt("DEFAULT_USER_ID", 0),
	}

	if config.DefaultUserID > 0 {
		log.Printf("WARNING: DEFAULT_USER_ID=%d is set; unauthenticated bookings will be attributed to it", config.DefaultUserID)
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
