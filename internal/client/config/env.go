package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted by parseEnv.
const (
	EnvBaseURL   = "FINPLANNER_BASE_URL"
	EnvSessionDB = "FINPLANNER_SESSION_DB"
	EnvLogLevel  = "FINPLANNER_LOG_LEVEL"
	EnvLogFormat = "FINPLANNER_LOG_FORMAT"
)

// dotenvFile is loaded if present. Variables already set in the process
// environment win over the file.
var dotenvFile = ".env"

func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotenvFile)

	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	set(&cfg.BaseURL, EnvBaseURL)
	set(&cfg.SessionDBPath, EnvSessionDB)
	set(&cfg.LogLevel, EnvLogLevel)
	set(&cfg.LogFormat, EnvLogFormat)
}
