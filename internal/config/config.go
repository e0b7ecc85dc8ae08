package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	AppBaseURL       string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	JWTExpiration    time.Duration
	ResetTokenMaxAge time.Duration
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	EmailFrom        string
}

func LoadConfig() *Config {
	// Try to load .env file but don't fail if it doesn't exist
	_ = godotenv.Load()

	expiration, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "24h"))
	if err != nil {
		log.Fatal("Invalid JWT_EXPIRATION format. Use format like '24h'")
	}

	resetMaxAge, err := time.ParseDuration(getEnv("RESET_TOKEN_MAX_AGE", "30m"))
	if err != nil {
		log.Fatal("Invalid RESET_TOKEN_MAX_AGE format. Use format like '30m'")
	}

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "levelup_db"),
		JWTSecret:        getEnv("JWT_SECRET", "default-secret"),
		JWTExpiration:    expiration,
		ResetTokenMaxAge: resetMaxAge,
		SMTPHost:         getEnv("SMTP_HOST", "localhost"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFrom:        getEnv("EMAIL_FROM", "noreply@levelup.local"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
