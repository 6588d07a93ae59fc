package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	DatabaseURL string

	// SecretKey signs every issued identity token. Rotating it
	// invalidates all outstanding tokens.
	SecretKey string

	OwnerEmail    string
	OwnerPassword string
	OwnerName     string

	SMTPServer   string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string

	OpenAIAPIKey string
	AITimeout    time.Duration
}

func Load() *Config {
	// A local .env is a development convenience; in deployment all
	// values come from real environment variables.
	_ = godotenv.Load()

	ownerEmail := getEnv("OWNER_EMAIL", "")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DatabaseURL:   getEnv("DATABASE_URL", "jarvis.db"),
		SecretKey:     getEnv("SECRET_KEY", "jarvis-secret-change-me"),
		OwnerEmail:    strings.ToLower(strings.TrimSpace(ownerEmail)),
		OwnerPassword: getEnv("OWNER_PASSWORD", ""),
		OwnerName:     getEnv("OWNER_NAME", "Owner"),
		SMTPServer:    getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ownerEmail),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		AITimeout:     getSecondsEnv("AI_TIMEOUT_SECONDS", 30),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getSecondsEnv(key string, defaultSeconds int) time.Duration {
	value := os.Getenv(key)
	if value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
