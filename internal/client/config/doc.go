// Package config loads runtime configuration for the finplanner clients.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file and FINPLANNER_* environment variables.
//  3. Optional JSON file selected with -c, -config or FINPLANNER_CONFIG.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend functions
//	-s string   session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "base_url": "https://api.example.com",
//	  "endpoints": {"auth": "https://functions.example.com/auth-a1b2"},
//	  "session_db": "session.db",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
//
// Any endpoint left out of "endpoints" is derived from base_url.
package config
