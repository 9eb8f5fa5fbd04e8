package ioexport_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/ioexport"
	"github.com/Paula-Iglesias-Rivas/EModelDB/internal/iotesting"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/export"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExporterContract verifies the bundler satisfies export.Exporter.
func TestExporterContract(t *testing.T) {
	cfg := iotesting.SetupConfig(t, nil)
	var _ export.Exporter = ioexport.New(cfg)
}

func TestExportSingleRecord(t *testing.T) {
	records := iotesting.SampleRecords()
	cfg := iotesting.SetupConfig(t, records)

	artifact, err := ioexport.New(cfg).Export(
		context.Background(), records[:1],
	)
	require.NoError(t, err)

	assert.Equal(t, "WAG_matrix.txt", artifact.Filename)
	assert.Equal(t, export.MIMEText, artifact.MIMEType)
	assert.Equal(t, iotesting.MatrixContent(records[0]), artifact.Data)
}

func TestExportArchive(t *testing.T) {
	records := iotesting.SampleRecords()
	cfg := iotesting.SetupConfig(t, records)

	artifact, err := ioexport.New(cfg).Export(
		context.Background(), records,
	)
	require.NoError(t, err)

	assert.Equal(t, export.ArchiveName, artifact.Filename)
	assert.Equal(t, export.MIMEZip, artifact.MIMEType)

	zr, err := zip.NewReader(
		bytes.NewReader(artifact.Data), int64(len(artifact.Data)),
	)
	require.NoError(t, err)
	require.Len(t, zr.File, len(records),
		"exactly one entry per selected record")

	for i, rec := range records {
		f := zr.File[i]
		assert.Equal(t, export.EntryName(rec), f.Name)

		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		assert.Equal(t, iotesting.MatrixContent(rec), data,
			"entry traceable back to its record")
	}
}

func TestExportMissingFile(t *testing.T) {
	records := iotesting.SampleRecords()
	cfg := iotesting.SetupConfig(t, records)

	// remove one of three matrix files
	gone := filepath.Join(cfg.Catalog.MatrixDir, records[1].MatrixFile)
	require.NoError(t, os.Remove(gone))

	artifact, err := ioexport.New(cfg).Export(
		context.Background(), records,
	)
	require.Error(t, err)
	assert.Nil(t, artifact, "no partial bundle is produced")

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.MissingMatrixError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), records[1].Name,
		"the missing record is named")
	assert.NotContains(t, gnErr.Err.Error(), records[0].Name)
}

func TestExportEmptySelection(t *testing.T) {
	cfg := iotesting.SetupConfig(t, iotesting.SampleRecords())

	_, err := ioexport.New(cfg).Export(
		context.Background(), nil,
	)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.EmptySelectionError, gnErr.Code)
}

func TestExportReenterableAfterFailure(t *testing.T) {
	records := iotesting.SampleRecords()
	cfg := iotesting.SetupConfig(t, records)
	exp := ioexport.New(cfg)

	gone := filepath.Join(cfg.Catalog.MatrixDir, records[2].MatrixFile)
	require.NoError(t, os.Remove(gone))

	_, err := exp.Export(context.Background(), records)
	require.Error(t, err)

	// deselect the failing record and export again
	ok := []catalog.ModelRecord{records[0], records[1]}
	artifact, err := exp.Export(context.Background(), ok)
	require.NoError(t, err)
	assert.Equal(t, export.ArchiveName, artifact.Filename)
}
