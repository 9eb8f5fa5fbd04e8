package iocatalog_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iocatalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iotesting"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoaderContract verifies the loader satisfies catalog.Loader.
func TestLoaderContract(t *testing.T) {
	cfg := config.New()
	var _ catalog.Loader = iocatalog.New(cfg)
}

func TestLoadKeepsSourceOrder(t *testing.T) {
	records := iotesting.SampleRecords()
	cfg := iotesting.SetupConfig(t, records)

	res, err := iocatalog.New(cfg).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res, len(records))

	for i, rec := range records {
		assert.Equal(t, rec.Name, res[i].Name)
		assert.Equal(t, rec.Year, res[i].Year)
		assert.Equal(t, rec.TaxonomicGroup, res[i].TaxonomicGroup)
		assert.Equal(t, rec.MatrixFile, res[i].MatrixFile)
	}
}

func TestLoadMissingSource(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCatalogDatabase(
			filepath.Join(t.TempDir(), "absent.db"),
		),
	})

	_, err := iocatalog.New(cfg).Load(context.Background())
	require.Error(t, err)
	assertCode(t, err, errcode.CatalogOpenError)
}

func TestLoadMalformedRow(t *testing.T) {
	records := iotesting.SampleRecords()
	records[1].Authors = "" // required field

	cfg := iotesting.SetupConfig(t, records)
	res, err := iocatalog.New(cfg).Load(context.Background())
	require.Error(t, err, "fail closed, no partial catalog")
	assert.Nil(t, res)
	assertCode(t, err, errcode.CatalogMalformedError)
}

func TestLoadNullRequiredColumn(t *testing.T) {
	records := iotesting.SampleRecords()
	cfg := iotesting.SetupConfig(t, records)

	db, err := sql.Open("sqlite", cfg.Catalog.Database)
	require.NoError(t, err)
	_, err = db.Exec(
		`UPDATE substitution_models SET year = NULL WHERE name = 'mtMam'`,
	)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	res, err := iocatalog.New(cfg).Load(context.Background())
	require.Error(t, err, "fail closed, no partial catalog")
	assert.Nil(t, res)
	assertCode(t, err, errcode.CatalogMalformedError)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Contains(t, gnErr.Err.Error(), "mtMam",
		"the offending record is named")
	assert.Contains(t, gnErr.Err.Error(), "year")
}

func TestLoadDuplicateName(t *testing.T) {
	records := iotesting.SampleRecords()
	dup := records[0]
	records = append(records, dup)

	cfg := iotesting.SetupConfig(t, records)
	res, err := iocatalog.New(cfg).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assertCode(t, err, errcode.CatalogDuplicateNameError)
}

func TestLoadEmptyCatalog(t *testing.T) {
	cfg := iotesting.SetupConfig(t, nil)
	_, err := iocatalog.New(cfg).Load(context.Background())
	require.Error(t, err)
	assertCode(t, err, errcode.CatalogEmptyError)
}

func TestLoadOptionalComments(t *testing.T) {
	records := iotesting.SampleRecords()
	records[0].Comments = ""

	cfg := iotesting.SetupConfig(t, records)
	res, err := iocatalog.New(cfg).Load(context.Background())
	require.NoError(t, err, "empty comments are valid")
	assert.Empty(t, res[0].Comments)
}

func assertCode(t *testing.T, err error, code gn.ErrorCode) {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "error should be *gn.Error")
	assert.Equal(t, code, gnErr.Code)
}
