// Package iotesting provides shared test utilities for packages that need
// a materialized catalog. This is an internal package for test
// infrastructure only.
package iotesting

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/config"
	_ "modernc.org/sqlite"
)

// SampleRecords returns a small catalog used across tests.
// Matrix file paths are relative, as in the curated source.
func SampleRecords() []catalog.ModelRecord {
	return []catalog.ModelRecord{
		{
			Name: "WAG", Year: 2001,
			Authors:        "Whelan, Goldman",
			Reference:      "https://doi.org/10.1093/oxfordjournals.molbev.a003851",
			TaxonomicGroup: "General", MatrixType: "Exchangeability",
			Comments:   "globular proteins",
			MatrixFile: "wag.txt",
		},
		{
			Name: "mtMam", Year: 2005,
			Authors:        "Yang, Nielsen, Hasegawa",
			Reference:      "https://doi.org/10.1093/oxfordjournals.molbev.a025888",
			TaxonomicGroup: "Mammalia", MatrixType: "Exchangeability",
			Comments:   "mitochondrial proteins",
			MatrixFile: "mtmam.txt",
		},
		{
			Name: "FLU", Year: 2010,
			Authors:        "Dang, Le, Vinh, Le",
			Reference:      "https://doi.org/10.1186/1471-2148-10-99",
			TaxonomicGroup: "Viruses", MatrixType: "Exchangeability",
			MatrixFile: "flu.txt",
		},
	}
}

// SeedCatalog creates a SQLite catalog at dbPath with the given records,
// in the schema the loader expects.
func SeedCatalog(
	t *testing.T,
	dbPath string,
	records []catalog.ModelRecord,
) {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("cannot create test catalog: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
CREATE TABLE substitution_models (
  name            TEXT,
  year            INTEGER,
  authors         TEXT,
  reference       TEXT,
  taxonomic_group TEXT,
  matrix_type     TEXT,
  comments        TEXT,
  matrix_file     TEXT
)`)
	if err != nil {
		t.Fatalf("cannot create test schema: %v", err)
	}

	for _, rec := range records {
		_, err = db.Exec(
			`INSERT INTO substitution_models VALUES (?,?,?,?,?,?,?,?)`,
			rec.Name, rec.Year, rec.Authors, rec.Reference,
			rec.TaxonomicGroup, rec.MatrixType, rec.Comments,
			rec.MatrixFile,
		)
		if err != nil {
			t.Fatalf("cannot insert test record %q: %v", rec.Name, err)
		}
	}
}

// MatrixContent is the deterministic payload written for a record's
// matrix file, so tests can trace archive entries back to records.
func MatrixContent(rec catalog.ModelRecord) []byte {
	return []byte("matrix of " + rec.Name + "\n")
}

// SeedMatrixDir writes a matrix file for each record under dir.
func SeedMatrixDir(
	t *testing.T,
	dir string,
	records []catalog.ModelRecord,
) {
	t.Helper()

	for _, rec := range records {
		path := filepath.Join(dir, rec.MatrixFile)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("cannot create matrix dir: %v", err)
		}
		err := os.WriteFile(path, MatrixContent(rec), 0644)
		if err != nil {
			t.Fatalf("cannot write matrix file %q: %v", path, err)
		}
	}
}

// SetupConfig returns a config pointing to a fully seeded temporary
// catalog: SQLite source plus matrix directory.
func SetupConfig(
	t *testing.T,
	records []catalog.ModelRecord,
) *config.Config {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "models.db")
	matrixDir := filepath.Join(dir, "matrices")

	SeedCatalog(t, dbPath, records)
	SeedMatrixDir(t, matrixDir, records)

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCatalogDatabase(dbPath),
		config.OptCatalogMatrixDir(matrixDir),
		config.OptLogDestination("stderr"),
	})
	return cfg
}
