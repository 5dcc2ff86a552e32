package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	RedisAddr       string
	APIBaseURL      string
	WompiBaseURL    string
	WompiPublicKey  string
	RedirectURL     string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		APIBaseURL:      envOrDefault("API_BASE_URL", "http://localhost:3000/api"),
		WompiBaseURL:    envOrDefault("WOMPI_API_URL", "https://api-sandbox.co.uat.wompi.dev/v1"),
		WompiPublicKey:  envOrDefault("WOMPI_PUBLIC_KEY", ""),
		RedirectURL:     envOrDefault("PAYMENT_REDIRECT_URL", "https://docs.wompi.co/docs/colombia/js/"),
		CORSOrigin:      envOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
