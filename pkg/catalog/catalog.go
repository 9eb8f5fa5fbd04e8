// Package catalog defines the in-memory representation of the EModelDB
// catalog: one record per empirical substitution model of protein
// evolution. The catalog is read once at startup from a static source and
// is immutable for the lifetime of the process.
package catalog

import (
	"context"
	"slices"
	"strings"

	"github.com/gnames/gnuuid"
)

// ModelRecord is one catalog entry describing a named substitution model
// and its metadata.
type ModelRecord struct {
	// Name is the unique identifier of the model (e.g. "WAG", "LG").
	Name string `json:"name"`

	// Year of publication.
	Year int `json:"year"`

	// Authors of the model.
	Authors string `json:"authors"`

	// Reference is the citation, including a URL to the article.
	Reference string `json:"reference"`

	// TaxonomicGroup the model was estimated from. Drawn from a small
	// fixed vocabulary (e.g. "Mammalia", "Viruses").
	TaxonomicGroup string `json:"taxonomicGroup"`

	// MatrixType classifies the matrix (e.g. "Exchangeability", "PAM").
	MatrixType string `json:"matrixType"`

	// Comments is optional free text.
	Comments string `json:"comments,omitempty"`

	// MatrixFile is the path of the associated matrix file, relative to
	// the configured matrix directory. Its existence is checked at export
	// time, not at load time.
	MatrixFile string `json:"matrixFile"`
}

// ID returns a deterministic UUID v5 derived from the model name.
// The same model always gets the same ID across sessions.
func (m ModelRecord) ID() string {
	return gnuuid.New(m.Name).String()
}

// Loader reads the complete record set from the static source.
//
// Load returns records in source order. It fails closed: a missing or
// malformed source returns an error and no records, so the interface
// never starts with a partial catalog.
type Loader interface {
	Load(ctx context.Context) ([]ModelRecord, error)
}

// ByName returns the record with the given name, if present.
func ByName(records []ModelRecord, name string) (ModelRecord, bool) {
	for _, rec := range records {
		if rec.Name == name {
			return rec, true
		}
	}
	return ModelRecord{}, false
}

// TaxonomicGroups returns the distinct taxonomic groups of the records,
// sorted alphabetically. Used to build the filter control options.
func TaxonomicGroups(records []ModelRecord) []string {
	return distinct(records, func(m ModelRecord) string {
		return m.TaxonomicGroup
	})
}

// MatrixTypes returns the distinct matrix types of the records,
// sorted alphabetically. Used to build the filter control options.
func MatrixTypes(records []ModelRecord) []string {
	return distinct(records, func(m ModelRecord) string {
		return m.MatrixType
	})
}

// Years returns the distinct publication years of the records, ascending.
func Years(records []ModelRecord) []int {
	seen := make(map[int]struct{})
	var res []int
	for _, rec := range records {
		if _, ok := seen[rec.Year]; ok {
			continue
		}
		seen[rec.Year] = struct{}{}
		res = append(res, rec.Year)
	}
	slices.Sort(res)
	return res
}

func distinct(
	records []ModelRecord,
	field func(ModelRecord) string,
) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, rec := range records {
		v := strings.TrimSpace(field(rec))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}
