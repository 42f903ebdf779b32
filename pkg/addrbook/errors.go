package addrbook

import (
	"errors"
	"fmt"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/document"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file type has no reader.
var ErrUnsupportedFormat = document.ErrUnsupportedFormat

// ErrTableNotFound indicates the document has no table at the schema's index.
var ErrTableNotFound = errors.New("contact table not found")

// ErrNoRecords indicates the contact table yielded no contacts to export.
var ErrNoRecords = errors.New("no contacts found")

// ErrInvalidSchema indicates a schema descriptor failed validation.
var ErrInvalidSchema = errors.New("invalid schema")

// NameParseError reports a name-header cell without a first and last name.
type NameParseError = parser.NameParseError

// DocumentReadError represents a failure to obtain the contact table.
type DocumentReadError struct {
	Path       string
	TableIndex int
	Err        error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("read document %q (table %d): %v", e.Path, e.TableIndex, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// NewDocumentReadError creates a new DocumentReadError.
func NewDocumentReadError(path string, tableIndex int, err error) *DocumentReadError {
	return &DocumentReadError{
		Path:       path,
		TableIndex: tableIndex,
		Err:        err,
	}
}

// ExportWriteError represents a failure to persist the output workbook.
// The records it was asked to write are unaffected.
type ExportWriteError struct {
	Path string
	Err  error
}

func (e *ExportWriteError) Error() string {
	return fmt.Sprintf("unable to write %q (close the file if it is open): %v", e.Path, e.Err)
}

func (e *ExportWriteError) Unwrap() error {
	return e.Err
}

// NewExportWriteError creates a new ExportWriteError.
func NewExportWriteError(path string, err error) *ExportWriteError {
	return &ExportWriteError{
		Path: path,
		Err:  err,
	}
}
