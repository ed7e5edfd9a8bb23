package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override existing vars).
//
// Recognized variables:
//
//	API_URL           base URL of the marketplace API
//	CLIENT_STATE_DIR  directory for the local session database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := getEnv("API_URL", ""); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := getEnv("CLIENT_STATE_DIR", ""); v != "" {
		cfg.StateDir = v
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
