package addrbook

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/document"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/output"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/report"
)

// Extract reads the document at path and runs the pipeline over its
// contact table.
func Extract(path string, opts Options) (*models.Result, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}

	doc, err := ReadDocument(path, opts.Schema.TableIndex)
	if err != nil {
		return nil, err
	}
	return p.RunDocument(doc)
}

// ReadDocument reads every table of the document at path. Failures are
// returned as *DocumentReadError.
func ReadDocument(path string, tableIndex int) (*models.Document, error) {
	doc, err := document.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, NewDocumentReadError(document.ResolvePath(path), tableIndex, err)
	}
	return doc, nil
}

// Export writes records to a workbook at path with w. Failures are returned
// as *ExportWriteError.
func Export(w output.SheetWriter, path string, records []models.ContactRecord) error {
	if err := w.WriteSheet(path, output.Format(records)); err != nil {
		return NewExportWriteError(path, err)
	}
	return nil
}

// OutputPath returns the default workbook path for an input document: the
// input path with its extension replaced by ".xlsx".
func OutputPath(inputPath string) string {
	inputPath = document.ResolvePath(inputPath)
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
}

// Convert runs the whole conversion: extract, export to outPath and report
// the summary. Warnings reach n before any record is assembled, so they are
// delivered even when extraction later fails. A run without contacts
// returns the result with ErrNoRecords and writes nothing. An empty outPath
// means OutputPath(inPath).
func Convert(inPath, outPath string, opts Options, n report.Notifier) (*models.Result, error) {
	opts.OnWarnings = n.Warnings
	result, err := Extract(inPath, opts)
	if err != nil {
		return nil, err
	}

	if len(result.Records) == 0 {
		return result, ErrNoRecords
	}

	if outPath == "" {
		outPath = OutputPath(inPath)
	}
	w := &output.XLSXWriter{SheetName: opts.Schema.SheetName}
	if err := Export(w, outPath, result.Records); err != nil {
		return result, err
	}

	n.Done(report.Summary{Count: len(result.Records), Path: outPath})
	return result, nil
}
