// Package document reads tables from exported address-book files.
//
// HTML exports are the primary source; workbooks are accepted so an export
// that was already converted to a spreadsheet can be reprocessed.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// ErrUnsupportedFormat indicates the input extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Reader returns the tables of a document in document order.
type Reader interface {
	ReadTables(path string) ([]models.Table, error)
}

// ResolvePath returns the path to read. A path without an extension is
// taken to name an HTML export.
func ResolvePath(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".html"
	}
	return path
}

// ReaderFor returns the Reader matching the extension of path.
func ReaderFor(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".xlsx", ".xlsm":
		return &XLSXReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Read resolves path, picks a reader by extension and reads every table.
func Read(path string) (*models.Document, error) {
	path = ResolvePath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	r, err := ReaderFor(path)
	if err != nil {
		return nil, err
	}

	tables, err := r.ReadTables(path)
	if err != nil {
		return nil, err
	}

	return &models.Document{
		Path:   path,
		Tables: tables,
	}, nil
}
