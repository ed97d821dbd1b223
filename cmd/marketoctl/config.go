package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	IdentityURL  string // Required: base URL of the identity endpoint
	ClientID     string // Required: OAuth2 client identifier
	ClientSecret string // Required: OAuth2 client secret
	RestURL      string // Optional: override base URL for REST calls
	LogLevel     string // Log level (debug, info, warn, error) (default: info)
	LogFormat    string // Log format (json, text) (default: json)
}

// LoadConfig reads configuration from the environment, consulting a .env
// file in the working directory when present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Config{
		IdentityURL:  os.Getenv("MARKETO_IDENTITY_URL"),
		ClientID:     os.Getenv("MARKETO_CLIENT_ID"),
		ClientSecret: os.Getenv("MARKETO_CLIENT_SECRET"),
		RestURL:      os.Getenv("MARKETO_REST_URL"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "json"),
	}

	var missing []string
	if cfg.IdentityURL == "" {
		missing = append(missing, "MARKETO_IDENTITY_URL")
	}
	if cfg.ClientID == "" {
		missing = append(missing, "MARKETO_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, "MARKETO_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
