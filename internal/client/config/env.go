package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a local
// .env file first when present. A missing .env is not an error.
//
// Recognized variables:
//
//	SERVER_ENDPOINT_ADDR  backend base URL
//	SESSION_DB_PATH       session database path
//	REQUEST_TIMEOUT       per-request timeout in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SERVER_ENDPOINT_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("SESSION_DB_PATH"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
