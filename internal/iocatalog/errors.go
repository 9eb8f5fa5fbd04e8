package iocatalog

import (
	"fmt"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError is returned when the static catalog source cannot be opened.
// It is fatal at startup: the interface does not start without a catalog.
func OpenError(path string, err error) error {
	msg := `Cannot open the model catalog

<em>Catalog file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - File is not a SQLite database
  - Permission denied

<em>How to fix:</em>
  1. Check if the file exists: <em>ls -l %s</em>
  2. Point <em>catalog.database</em> in config.yaml to the curated models.db`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.CatalogOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open catalog %s: %w", path, err),
	}
}

// QueryError is returned when reading model rows fails.
func QueryError(err error) error {
	msg := `Cannot read substitution models from the catalog

<em>The catalog file is present but malformed.</em>
It must contain the <em>substitution_models</em> table with columns:
name, year, authors, reference, taxonomic_group, matrix_type,
comments, matrix_file.`

	return &gn.Error{
		Code: errcode.CatalogQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot query substitution_models: %w", err),
	}
}

// MalformedError is returned when a row misses a required field.
func MalformedError(name, field string) error {
	msg := `Catalog row is missing a required field

<em>Model:</em> %s
<em>Field:</em> %s

The interface does not start with a partial catalog. Fix the row in the
curated source and restart.`

	vars := []any{displayName(name), field}

	return &gn.Error{
		Code: errcode.CatalogMalformedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"model %q is missing required field %q", name, field,
		),
	}
}

// DuplicateNameError is returned when two rows share a model name.
// Names are the unique identifiers of the catalog.
func DuplicateNameError(name string) error {
	msg := `Duplicate model name in the catalog

<em>Model:</em> %s

Model names are unique identifiers; remove the duplicate row from the
curated source and restart.`

	vars := []any{name}

	return &gn.Error{
		Code: errcode.CatalogDuplicateNameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate model name %q", name),
	}
}

// EmptyCatalogError is returned when the source contains no records.
func EmptyCatalogError() error {
	msg := `The model catalog is empty

The <em>substitution_models</em> table has no rows. Populate the curated
source before starting the interface.`

	return &gn.Error{
		Code: errcode.CatalogEmptyError,
		Msg:  msg,
		Err:  fmt.Errorf("catalog has no records"),
	}
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}
