package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Resend (transactional email)
	ResendAPIKey     string
	ContactEmailFrom string
	ContactEmailTo   string
	MailTimeoutSecs  int
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// The from address must use a domain verified in Resend
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactEmailFrom: getEnv("CONTACT_EMAIL_FROM", "Portfólio <onboarding@resend.dev>"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "eduardosantosj2@gmail.com"),
		MailTimeoutSecs:  getEnvInt("MAIL_TIMEOUT_SECONDS", 5),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
	}

	// The mail key is the one secret the process cannot run without
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("config: RESEND_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
