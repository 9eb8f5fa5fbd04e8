package filter

import (
	"slices"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
)

// SortField names a sortable attribute of the record listing.
type SortField string

const (
	SortByName           SortField = "name"
	SortByYear           SortField = "year"
	SortByAuthors        SortField = "authors"
	SortByTaxonomicGroup SortField = "taxonomic_group"
	SortByMatrixType     SortField = "matrix_type"
)

// ParseSortField maps a user-supplied value to a SortField.
// Unknown values fall back to SortByName.
func ParseSortField(s string) SortField {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case SortByYear:
		return SortByYear
	case SortByAuthors:
		return SortByAuthors
	case SortByTaxonomicGroup:
		return SortByTaxonomicGroup
	case SortByMatrixType:
		return SortByMatrixType
	default:
		return SortByName
	}
}

// Sort returns a copy of records ordered by the given field, ascending.
// The sort is stable, so records equal on the field keep source order.
// The input is never modified.
func Sort(
	records []catalog.ModelRecord,
	field SortField,
) []catalog.ModelRecord {
	res := slices.Clone(records)
	slices.SortStableFunc(res, func(a, b catalog.ModelRecord) int {
		switch field {
		case SortByYear:
			return a.Year - b.Year
		case SortByAuthors:
			return compareFold(a.Authors, b.Authors)
		case SortByTaxonomicGroup:
			return compareFold(a.TaxonomicGroup, b.TaxonomicGroup)
		case SortByMatrixType:
			return compareFold(a.MatrixType, b.MatrixType)
		default:
			return compareFold(a.Name, b.Name)
		}
	})
	return res
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
