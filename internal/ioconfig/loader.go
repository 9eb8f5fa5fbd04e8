// Package ioconfig loads EModelDB configuration from the file system and
// environment. This is an impure package; pure configuration logic lives
// in pkg/config.
package ioconfig

import (
	"os"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iofs"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/spf13/viper"
)

// Load reads configuration from config.yaml in the application config
// directory, with EMODELDB_* environment variables taking precedence over
// file values. A missing file is not an error: defaults plus environment
// overrides are returned instead.
func Load(homeDir string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Precedence: env vars > config file > defaults.
	v.SetEnvPrefix(strings.ToUpper(config.AppName))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults must be registered before reading the file so that
	// AutomaticEnv knows which keys to check.
	defaults := config.New()
	v.SetDefault("catalog.database", defaults.Catalog.Database)
	v.SetDefault("catalog.matrix_dir", defaults.Catalog.MatrixDir)
	v.SetDefault("web.host", defaults.Web.Host)
	v.SetDefault("web.port", defaults.Web.Port)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	configPath := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, iofs.ReadFileError(configPath, err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, iofs.ReadFileError(configPath, err)
	}

	return &cfg, nil
}
