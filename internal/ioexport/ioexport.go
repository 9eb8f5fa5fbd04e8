// Package ioexport materializes selected records into downloadable
// artifacts by bundling their matrix files.
//
// Export is all-or-nothing: every referenced file is resolved and checked
// before any bytes are bundled. When files are missing, the error names
// every missing record and no artifact is produced.
package ioexport

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/export"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/flate"
)

type ioexport struct {
	cfg *config.Config
}

// New returns an export.Exporter resolving matrix files under the
// configured matrix directory.
func New(cfg *config.Config) export.Exporter {
	res := ioexport{cfg: cfg}
	return &res
}

func (e *ioexport) Export(
	ctx context.Context,
	records []catalog.ModelRecord,
) (*export.Artifact, error) {
	if len(records) == 0 {
		return nil, EmptySelectionError()
	}

	found, missing := e.resolve(records)
	if len(missing) > 0 {
		return nil, MissingMatrixError(missing, keys(found))
	}

	var artifact *export.Artifact
	var err error
	if len(records) == 1 {
		artifact, err = singleFile(records[0], found[records[0].Name])
	} else {
		artifact, err = archive(ctx, records, found)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Export complete",
		"records", len(records),
		"artifact", artifact.Filename,
		"size", humanize.Bytes(uint64(len(artifact.Data))),
	)
	return artifact, nil
}

// resolve maps every record name to the absolute path of its matrix file,
// and collects the names whose files are absent.
func (e *ioexport) resolve(
	records []catalog.ModelRecord,
) (found map[string]string, missing []string) {
	found = make(map[string]string)
	for _, rec := range records {
		path := filepath.Join(e.cfg.Catalog.MatrixDir, rec.MatrixFile)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			missing = append(missing, rec.Name)
			continue
		}
		found[rec.Name] = path
	}
	return found, missing
}

func singleFile(
	rec catalog.ModelRecord,
	path string,
) (*export.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WriteError(rec.Name, err)
	}
	return &export.Artifact{
		Filename: export.EntryName(rec),
		MIMEType: export.MIMEText,
		Data:     data,
	}, nil
}

func archive(
	ctx context.Context,
	records []catalog.ModelRecord,
	found map[string]string,
) (*export.Artifact, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	zw.RegisterCompressor(zip.Deflate,
		func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, flate.BestSpeed)
		})

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, WriteError(rec.Name, err)
		}

		entry, err := zw.Create(export.EntryName(rec))
		if err != nil {
			return nil, WriteError(rec.Name, err)
		}
		data, err := os.ReadFile(found[rec.Name])
		if err != nil {
			return nil, WriteError(rec.Name, err)
		}
		if _, err = entry.Write(data); err != nil {
			return nil, WriteError(rec.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, WriteError(export.ArchiveName, err)
	}

	return &export.Artifact{
		Filename: export.ArchiveName,
		MIMEType: export.MIMEZip,
		Data:     buf.Bytes(),
	}, nil
}

func keys(m map[string]string) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	return res
}
