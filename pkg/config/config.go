// Package config provides configuration management for EModelDB.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use EMODELDB_ prefix with underscores for nesting:
//
//	EMODELDB_CATALOG_DATABASE=/data/models.db
//	EMODELDB_CATALOG_MATRIX_DIR=/data/matrices
//	EMODELDB_WEB_PORT=8080
//	EMODELDB_LOG_LEVEL=info
package config

// Config represents the complete EModelDB configuration.
type Config struct {
	// Catalog contains settings for the static model catalog.
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`

	// Web contains settings for the web interface.
	Web WebConfig `mapstructure:"web" yaml:"web"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// CatalogConfig describes the static, read-only data the interface serves.
type CatalogConfig struct {
	// Database is the path to the SQLite file with model metadata.
	// The file is externally curated and never written by EModelDB.
	Database string `mapstructure:"database" yaml:"database"`

	// MatrixDir is the directory holding the matrix files referenced by
	// catalog records. Record paths are resolved relative to this directory.
	MatrixDir string `mapstructure:"matrix_dir" yaml:"matrix_dir"`
}

// WebConfig contains settings for the HTTP interface.
type WebConfig struct {
	// Host is the address the web server binds to.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the TCP port of the web server.
	Port int `mapstructure:"port" yaml:"port"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Catalog: CatalogConfig{
			Database:  "models.db",
			MatrixDir: "matrices",
		},
		Web: WebConfig{
			Host: "localhost",
			Port: 8555,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
