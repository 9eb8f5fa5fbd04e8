// Package export defines the contract for materializing a selection of
// catalog records into a downloadable artifact.
//
// The export policy is all-or-nothing: every referenced matrix file is
// checked before any bytes are bundled. If any file is absent the export
// fails with an error naming every missing record, and no artifact is
// produced. A silently incomplete archive is never returned.
package export

import (
	"context"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
)

// MIME types of the two artifact shapes.
const (
	MIMEText = "text/plain; charset=utf-8"
	MIMEZip  = "application/zip"
)

// ArchiveName is the download name of a multi-record artifact.
const ArchiveName = "matrices_selected.zip"

// Artifact is the downloadable output of an export: a single matrix file
// when exactly one record is selected, a ZIP archive otherwise.
type Artifact struct {
	// Filename is the suggested download name.
	Filename string

	// MIMEType is the content type for the download.
	MIMEType string

	// Data is the complete artifact payload.
	Data []byte
}

// Exporter bundles the matrix files of selected records.
type Exporter interface {
	// Export resolves each record's matrix file and returns the artifact.
	// An empty record list returns an EmptySelectionError; absent files
	// return a MissingMatrixError naming every missing record.
	Export(
		ctx context.Context,
		records []catalog.ModelRecord,
	) (*Artifact, error)
}

// EntryName is the archive entry (and single-file download) name for a
// record's matrix, traceable back to the record.
func EntryName(rec catalog.ModelRecord) string {
	return rec.Name + "_matrix.txt"
}
