package ioexport

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
)

// EmptySelectionError is returned when export is triggered with nothing
// selected. It is a reported no-op, not a crash.
func EmptySelectionError() error {
	msg := `Nothing is selected for export

Select one or more models in the listing, or use
<em>Select All</em> after filtering.`

	return &gn.Error{
		Code: errcode.EmptySelectionError,
		Msg:  msg,
		Err:  fmt.Errorf("export with empty selection"),
	}
}

// MissingMatrixError names every selected record whose matrix file is
// absent. The export is aborted; the records whose files were found are
// listed so nothing fails silently.
func MissingMatrixError(missing, found []string) error {
	slices.Sort(missing)
	slices.Sort(found)

	msg := `Some selected models have no matrix file

<em>Missing:</em> %s

No artifact was produced. The files for <em>%s</em> were found; deselect
the missing models or restore their files and export again.`

	foundList := "none of the other models"
	if len(found) > 0 {
		foundList = strings.Join(found, ", ")
	}
	vars := []any{strings.Join(missing, ", "), foundList}

	return &gn.Error{
		Code: errcode.MissingMatrixError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"missing matrix files for: %s", strings.Join(missing, ", "),
		),
	}
}

// WriteError is returned when reading a matrix file or writing the
// artifact fails mid-export.
func WriteError(name string, err error) error {
	msg := `Cannot write export artifact

<em>While bundling:</em> %s`

	vars := []any{name}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot bundle %s: %w", name, err),
	}
}
