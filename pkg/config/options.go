package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCatalogDatabase sets the path to the SQLite file with model metadata.
func OptCatalogDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog Database", s) {
			c.Catalog.Database = s
		}
	}
}

// OptCatalogMatrixDir sets the directory holding matrix files.
func OptCatalogMatrixDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog MatrixDir", s) {
			c.Catalog.MatrixDir = s
		}
	}
}

// OptWebHost sets the address the web server binds to.
func OptWebHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Web Host", s) {
			c.Web.Host = s
		}
	}
}

// OptWebPort sets the TCP port of the web server.
func OptWebPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Web Port", i) {
			c.Web.Port = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the format of log entries.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where log entries go.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory used to derive config, cache and
// log locations. Runtime-only, never serialized to config.yaml.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("HomeDir", s) {
			c.HomeDir = s
		}
	}
}
