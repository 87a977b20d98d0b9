package config

import (
	"fmt"
	"os"
	"time"
)

// Config is the env-backed runtime configuration for the API server.
type Config struct {
	DatabaseURL string
	Port        string

	JWTSecret string
	JWTTTL    time.Duration

	MPAccessToken string
	MPBaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          envOrDefault("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        24 * time.Hour,
		MPAccessToken: os.Getenv("MP_ACCESS_TOKEN"),
		MPBaseURL:     os.Getenv("MP_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
