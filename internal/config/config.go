package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	PublicDir         string
	LeadsFile         string
	MaxBodyBytes      int64
	RateLimitInterval time.Duration
	RedisAddr         string
	RedisPassword     string

	// Lead notification email (optional; stubbed when unset)
	SendGridAPIKey    string
	SendGridFromEmail string
	LeadNotifyEmail   string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "3001"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PublicDir:         getEnv("PUBLIC_DIR", "web"),
		LeadsFile:         getEnv("LEADS_FILE", "data/leads.jsonl"),
		MaxBodyBytes:      int64(getEnvAsInt("MAX_BODY_BYTES", 200*1024)),
		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 3*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		LeadNotifyEmail:   getEnv("LEAD_NOTIFY_EMAIL", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
