package ioconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/ioconfig"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, config.New().Catalog, cfg.Catalog)
	assert.Equal(t, config.New().Web, cfg.Web)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	dir := config.ConfigDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))

	// write config.yaml the same way users edit it
	fileCfg := map[string]any{
		"catalog": map[string]any{
			"database":   "/srv/models.db",
			"matrix_dir": "/srv/matrices",
		},
		"web": map[string]any{"port": 9001},
	}
	data, err := yaml.Marshal(fileCfg)
	require.NoError(t, err)
	require.NoError(t,
		os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "/srv/models.db", cfg.Catalog.Database)
	assert.Equal(t, "/srv/matrices", cfg.Catalog.MatrixDir)
	assert.Equal(t, 9001, cfg.Web.Port)
	// unset fields fall back to defaults
	assert.Equal(t, "localhost", cfg.Web.Host)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	dir := config.ConfigDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("web:\n  port: 9001\n"), 0644))

	t.Setenv("EMODELDB_WEB_PORT", "9100")
	t.Setenv("EMODELDB_CATALOG_MATRIX_DIR", "/env/matrices")

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Web.Port)
	assert.Equal(t, "/env/matrices", cfg.Catalog.MatrixDir)
}

func TestLoadMalformedFile(t *testing.T) {
	home := t.TempDir()
	dir := config.ConfigDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("not: [valid"), 0644))

	_, err := ioconfig.Load(home)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
}
