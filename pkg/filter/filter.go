// Package filter narrows the catalog by user-chosen predicates.
//
// Filtering is pure: it never mutates its input, preserves source order,
// and never errors. An overly restrictive predicate set yields an empty
// result, not a failure.
package filter

import (
	"slices"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
)

// Predicates is the set of user-chosen filter constraints, one per
// filterable attribute. A zero-value field imposes no constraint.
//
// Constraints combine with logical AND across attributes. Within a
// multi-valued attribute (Years, TaxonomicGroups, MatrixTypes) values
// combine with logical OR: "taxonomic group is Mammalia or Viruses".
type Predicates struct {
	// Name matches records whose name contains the value,
	// case-insensitively.
	Name string

	// Authors matches records whose authors contain the value,
	// case-insensitively.
	Authors string

	// Comments matches records whose comments contain the value,
	// case-insensitively.
	Comments string

	// Years matches records published in any of the given years.
	Years []int

	// TaxonomicGroups matches records in any of the given groups,
	// case-insensitively.
	TaxonomicGroups []string

	// MatrixTypes matches records with any of the given matrix types,
	// case-insensitively.
	MatrixTypes []string
}

// IsZero reports whether no predicate is specified.
func (p Predicates) IsZero() bool {
	return p.Name == "" && p.Authors == "" && p.Comments == "" &&
		len(p.Years) == 0 && len(p.TaxonomicGroups) == 0 &&
		len(p.MatrixTypes) == 0
}

// Match reports whether a record satisfies every specified predicate.
func (p Predicates) Match(rec catalog.ModelRecord) bool {
	if !matchSubstring(rec.Name, p.Name) {
		return false
	}
	if !matchSubstring(rec.Authors, p.Authors) {
		return false
	}
	if !matchSubstring(rec.Comments, p.Comments) {
		return false
	}
	if len(p.Years) > 0 && !slices.Contains(p.Years, rec.Year) {
		return false
	}
	if !matchAnyFold(rec.TaxonomicGroup, p.TaxonomicGroups) {
		return false
	}
	if !matchAnyFold(rec.MatrixType, p.MatrixTypes) {
		return false
	}
	return true
}

// Apply returns the ordered sub-sequence of records satisfying all
// specified predicates. The input is never modified; the result is a
// fresh slice even when every record matches.
func Apply(
	records []catalog.ModelRecord,
	p Predicates,
) []catalog.ModelRecord {
	res := make([]catalog.ModelRecord, 0, len(records))
	for _, rec := range records {
		if p.Match(rec) {
			res = append(res, rec)
		}
	}
	return res
}

func matchSubstring(field, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(
		strings.ToLower(field),
		strings.ToLower(strings.TrimSpace(query)),
	)
}

func matchAnyFold(field string, values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if strings.EqualFold(field, strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}
