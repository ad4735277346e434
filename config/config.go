package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	DBDriver   string // sqlite | postgres | mysql
	DBName     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	SessionTTLHours int

	QuoteAPIURL     string
	QuoteAPIKey     string
	QuoteSymbolFile string

	StartingCash string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "finance.db"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),

		QuoteAPIURL:     getEnv("QUOTE_API_URL", "https://www.alphavantage.co/query"),
		QuoteAPIKey:     getEnv("QUOTE_API_KEY", ""),
		QuoteSymbolFile: getEnv("QUOTE_SYMBOL_FILE", ""),

		StartingCash: getEnv("STARTING_CASH", "10000.00"),
	}

	if AppConfig.QuoteAPIKey == "" {
		log.Println("Warning: QUOTE_API_KEY not set. Falling back to the built-in static quote table.")
	}
	if AppConfig.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Sessions will be held in process memory.")
	}

	return AppConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
