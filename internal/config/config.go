package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	ServerPort  string
	Environment string

	// Domain is the public base URL embedded in verification links
	Domain string

	// Mail delivery (SMTP)
	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string

	CacheTTL time.Duration

	// Rate limiting
	RateLimitMaxRequests int
	RateLimitWindow      time.Duration
}

func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	// (containers use environment variables directly)
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		Domain:      os.Getenv("DOMAIN"),

		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     getEnvAsInt("MAIL_PORT", 587),
		MailUser:     os.Getenv("MAIL_USER"),
		MailPassword: os.Getenv("MAIL_PASSWORD"),

		CacheTTL: getEnvAsDuration("CACHE_TTL", "1h"),

		RateLimitMaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindow:      getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),
	}

	return cfg
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnvAsInt retrieves environment variable as int with default value
func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %d", key, defaultVal)
		return defaultVal
	}
	return val
}

// getEnvAsDuration retrieves environment variable as duration with default value
func getEnvAsDuration(key string, defaultVal string) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	duration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %s", key, defaultVal)
		duration, _ = time.ParseDuration(defaultVal)
	}
	return duration
}
