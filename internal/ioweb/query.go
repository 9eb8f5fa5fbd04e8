package ioweb

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/filter"
)

// queryState carries the raw filter controls of a request, so the form
// can be re-rendered exactly as submitted.
type queryState struct {
	Name            string
	Authors         string
	Comments        string
	Year            string
	TaxonomicGroups []string
	MatrixTypes     []string
	SortBy          string
}

// parseQuery reads filter controls from URL query values. Malformed year
// values are ignored rather than rejected: filtering never errors.
func parseQuery(values url.Values) (queryState, filter.Predicates, filter.SortField) {
	q := queryState{
		Name:            strings.TrimSpace(values.Get("name")),
		Authors:         strings.TrimSpace(values.Get("authors")),
		Comments:        strings.TrimSpace(values.Get("comments")),
		Year:            strings.TrimSpace(values.Get("year")),
		TaxonomicGroups: clean(values["taxonomic_group"]),
		MatrixTypes:     clean(values["matrix_type"]),
		SortBy:          values.Get("sort_by"),
	}

	preds := filter.Predicates{
		Name:            q.Name,
		Authors:         q.Authors,
		Comments:        q.Comments,
		Years:           parseYears(q.Year),
		TaxonomicGroups: q.TaxonomicGroups,
		MatrixTypes:     q.MatrixTypes,
	}

	return q, preds, filter.ParseSortField(q.SortBy)
}

// Encode rebuilds the query string of the state, used by select/export
// forms to return to the same filtered view.
func (q queryState) Encode() string {
	values := url.Values{}
	set := func(key, v string) {
		if v != "" {
			values.Set(key, v)
		}
	}
	set("name", q.Name)
	set("authors", q.Authors)
	set("comments", q.Comments)
	set("year", q.Year)
	set("sort_by", q.SortBy)
	for _, v := range q.TaxonomicGroups {
		values.Add("taxonomic_group", v)
	}
	for _, v := range q.MatrixTypes {
		values.Add("matrix_type", v)
	}
	return values.Encode()
}

// HasGroup reports whether a group is among the active controls.
func (q queryState) HasGroup(group string) bool {
	for _, v := range q.TaxonomicGroups {
		if strings.EqualFold(v, group) {
			return true
		}
	}
	return false
}

// HasMatrixType reports whether a type is among the active controls.
func (q queryState) HasMatrixType(mt string) bool {
	for _, v := range q.MatrixTypes {
		if strings.EqualFold(v, mt) {
			return true
		}
	}
	return false
}

// parseYears accepts comma-separated years ("2005, 2010").
func parseYears(s string) []int {
	if s == "" {
		return nil
	}
	var res []int
	for _, part := range strings.Split(s, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		res = append(res, year)
	}
	return res
}

func clean(values []string) []string {
	var res []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
