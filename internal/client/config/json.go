package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	BaseURL       string        `json:"base_url"`
	Endpoints     api.Endpoints `json:"endpoints"`
	SessionDBPath string        `json:"session_db"`
	LogLevel      string        `json:"log_level"`
	LogFormat     string        `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config or FINPLANNER_CONFIG. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	cfg.Overrides = jc.Endpoints.Merge(cfg.Overrides)
}
