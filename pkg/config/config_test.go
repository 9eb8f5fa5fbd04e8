package config_test

import (
	"path/filepath"
	"testing"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "emodeldb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "emodeldb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "emodeldb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "models.db", cfg.Catalog.Database)
	assert.Equal(t, "matrices", cfg.Catalog.MatrixDir)
	assert.Equal(t, "localhost", cfg.Web.Host)
	assert.Equal(t, 8555, cfg.Web.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCatalogDatabase("/data/models.db"),
		config.OptCatalogMatrixDir("/data/matrices"),
		config.OptWebPort(9000),
		config.OptLogLevel("debug"),
	})

	assert.Equal(t, "/data/models.db", cfg.Catalog.Database)
	assert.Equal(t, "/data/matrices", cfg.Catalog.MatrixDir)
	assert.Equal(t, 9000, cfg.Web.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCatalogDatabase("  "),
		config.OptWebPort(-1),
		config.OptLogLevel("noisy"),
		config.OptLogFormat("xml"),
	})

	// invalid values are ignored, defaults survive
	assert.Equal(t, "models.db", cfg.Catalog.Database)
	assert.Equal(t, 8555, cfg.Web.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCatalogDatabase("/srv/emodeldb/models.db"),
		config.OptWebHost("0.0.0.0"),
		config.OptWebPort(8080),
		config.OptLogFormat("text"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Catalog, clone.Catalog)
	assert.Equal(t, cfg.Web, clone.Web)
	assert.Equal(t, cfg.Log, clone.Log)
}
