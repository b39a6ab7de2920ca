package config

import "github.com/dmitrijs2005/finplanner/internal/client/api"

// Config holds runtime settings for the finplanner clients.
//
// Fields:
//   - BaseURL: root URL the backend functions are served under.
//   - Overrides: per-function URLs; empty entries are derived from BaseURL.
//   - SessionDBPath: SQLite file holding the session cookies.
//   - LogLevel, LogFormat: passed to logging.New.
type Config struct {
	BaseURL       string
	Overrides     api.Endpoints
	SessionDBPath string
	LogLevel      string
	LogFormat     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.Overrides = api.Endpoints{}
	c.SessionDBPath = "session.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// Endpoints resolves the URL of every backend function.
func (c *Config) Endpoints() api.Endpoints {
	return c.Overrides.Merge(api.EndpointsFromBase(c.BaseURL))
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
