// Package errcode enumerates error codes used across EModelDB.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Catalog errors
	CatalogOpenError
	CatalogQueryError
	CatalogMalformedError
	CatalogDuplicateNameError
	CatalogEmptyError

	// Export errors
	EmptySelectionError
	MissingMatrixError
	ExportWriteError
	UnknownModelError

	// Web errors
	ServerStartError
)
