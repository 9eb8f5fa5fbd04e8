// Package iocatalog reads the static model catalog from its SQLite source.
//
// The source file is externally curated and opened read-only. Loading
// fails closed: a missing file, a malformed row or a duplicate model name
// aborts initialization so the interface never serves a partial catalog.
package iocatalog

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	"github.com/gnames/gnlib"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

type iocatalog struct {
	cfg *config.Config
}

// New returns a catalog.Loader backed by the SQLite file from the
// configuration.
func New(cfg *config.Config) catalog.Loader {
	res := iocatalog{cfg: cfg}
	return &res
}

func (l *iocatalog) Load(ctx context.Context) ([]catalog.ModelRecord, error) {
	path := l.cfg.Catalog.Database

	if _, err := os.Stat(path); err != nil {
		return nil, OpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer db.Close()

	records, err := readModels(ctx, db)
	if err != nil {
		return nil, err
	}

	slog.Info("Catalog loaded",
		"path", path,
		"records", len(records),
	)
	return records, nil
}

func readModels(
	ctx context.Context,
	db *sql.DB,
) ([]catalog.ModelRecord, error) {
	// rowid keeps source order stable across loads
	q := `
SELECT name, year, authors, reference,
       taxonomic_group, matrix_type, comments, matrix_file
  FROM substitution_models
 ORDER BY rowid`

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, QueryError(err)
	}
	defer rows.Close()

	var res []catalog.ModelRecord
	seen := make(map[string]struct{})

	for rows.Next() {
		// NULLs scan as zero values, so a NULL in a required column is
		// reported per-record by missingField instead of failing the scan
		var name, authors, reference sql.NullString
		var group, mtype, comments, file sql.NullString
		var year sql.NullInt64
		err = rows.Scan(
			&name, &year, &authors, &reference,
			&group, &mtype, &comments, &file,
		)
		if err != nil {
			return nil, QueryError(err)
		}

		rec := catalog.ModelRecord{
			Name:           strings.TrimSpace(name.String),
			Year:           int(year.Int64),
			Authors:        strings.TrimSpace(authors.String),
			Reference:      strings.TrimSpace(reference.String),
			TaxonomicGroup: strings.TrimSpace(group.String),
			MatrixType:     strings.TrimSpace(mtype.String),
			MatrixFile:     strings.TrimSpace(file.String),
		}
		if comments.Valid {
			// curated free text occasionally carries broken encodings
			rec.Comments = gnlib.FixUtf8(strings.TrimSpace(comments.String))
		}

		if field, ok := missingField(rec); !ok {
			return nil, MalformedError(rec.Name, field)
		}
		if _, ok := seen[rec.Name]; ok {
			return nil, DuplicateNameError(rec.Name)
		}
		seen[rec.Name] = struct{}{}

		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(err)
	}

	if len(res) == 0 {
		return nil, EmptyCatalogError()
	}

	return res, nil
}

// missingField reports the first required field that is empty.
// Comments are optional, everything else is required.
func missingField(rec catalog.ModelRecord) (string, bool) {
	required := []struct {
		field string
		value string
	}{
		{"name", rec.Name},
		{"authors", rec.Authors},
		{"reference", rec.Reference},
		{"taxonomic_group", rec.TaxonomicGroup},
		{"matrix_type", rec.MatrixType},
		{"matrix_file", rec.MatrixFile},
	}
	for _, v := range required {
		if strings.TrimSpace(v.value) == "" {
			return v.field, false
		}
	}
	if rec.Year == 0 {
		return "year", false
	}
	return "", true
}
