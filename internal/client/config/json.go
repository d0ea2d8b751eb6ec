package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mribeiro/bibliocli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// expressed in seconds and copied into the runtime Config's
// time.Duration.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	SessionDBPath      string `json:"session_db_path"`
	RequestTimeoutSecs int    `json:"request_timeout"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag means no JSON stage. Read or parse failures
// panic: a config file that exists but cannot be used is a setup error
// worth stopping for.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSecs) * time.Second
	}
}
