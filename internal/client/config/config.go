// Package config assembles the client's runtime settings from layered
// sources: built-in defaults, then a .env file / environment variables,
// then a JSON config file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the library client.
type Config struct {
	// ServerEndpointAddr is the backend base URL including the API
	// prefix, e.g. "http://localhost:8080/api".
	ServerEndpointAddr string

	// SessionDBPath is where the persisted session lives.
	SessionDBPath string

	// RequestTimeout bounds every single HTTP request.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080/api"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config by applying every source in order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
