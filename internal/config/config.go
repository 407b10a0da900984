package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the service, loaded once at startup.
type Config struct {
	Port            string
	DatabaseURL     string
	LogLevel        string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Load reads the configuration from environment variables. DATABASE_URL
// is the only required variable; everything else has a default.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     dbURL,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", "default-secret-key"),
		AccessTokenTTL:  time.Duration(getEnvInt("JWT_ACCESS_TOKEN_EXPIRES_HOURS", 1)) * time.Hour,
		RefreshTokenTTL: time.Duration(getEnvInt("JWT_REFRESH_TOKEN_EXPIRES_DAYS", 30)) * 24 * time.Hour,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
