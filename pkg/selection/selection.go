// Package selection tracks which catalog records a user has marked for
// export. Selection state is independent of filter state: changing
// filters does not clear prior selections, only Clear does.
package selection

import (
	"slices"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
)

// Selection is a set of model names marked for export.
// It is not safe for concurrent use; the owning session serializes access.
type Selection struct {
	names map[string]struct{}
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{names: make(map[string]struct{})}
}

// Add marks a record by its unique name.
func (s *Selection) Add(name string) {
	s.names[name] = struct{}{}
}

// AddAll marks every record of the given subset, keeping prior marks.
func (s *Selection) AddAll(records []catalog.ModelRecord) {
	for _, rec := range records {
		s.names[rec.Name] = struct{}{}
	}
}

// ReplaceAll makes the selection exactly the given subset, discarding
// prior marks. This is the "select all currently filtered" shortcut:
// after it, the selected names equal the subset's names no matter what
// was selected before.
func (s *Selection) ReplaceAll(records []catalog.ModelRecord) {
	clear(s.names)
	s.AddAll(records)
}

// Remove unmarks a record. Removing an unselected name is a no-op.
func (s *Selection) Remove(name string) {
	delete(s.names, name)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	clear(s.names)
}

// IsSelected reports whether the named record is marked.
func (s *Selection) IsSelected(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of selected records.
func (s *Selection) Len() int {
	return len(s.names)
}

// Names returns the selected names, sorted alphabetically.
func (s *Selection) Names() []string {
	res := make([]string, 0, len(s.names))
	for name := range s.names {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Records resolves the selection against the catalog, preserving catalog
// order. Selected names absent from the catalog are skipped.
func (s *Selection) Records(
	records []catalog.ModelRecord,
) []catalog.ModelRecord {
	var res []catalog.ModelRecord
	for _, rec := range records {
		if s.IsSelected(rec.Name) {
			res = append(res, rec)
		}
	}
	return res
}
