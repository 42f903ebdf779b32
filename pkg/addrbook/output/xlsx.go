package output

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Contacts"

// maxColumnWidth is the widest column Excel accepts.
const maxColumnWidth = 255

// SheetWriter persists a formatted sheet.
type SheetWriter interface {
	WriteSheet(path string, sheet *Sheet) error
}

// XLSXWriter writes a sheet as a single-worksheet workbook with a frozen
// header row and columns sized to their content.
type XLSXWriter struct {
	// SheetName is the worksheet name. Empty means DefaultSheetName.
	SheetName string
}

// WriteSheet writes sheet to path, replacing any existing file.
func (w *XLSXWriter) WriteSheet(path string, sheet *Sheet) error {
	f, err := w.Build(sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove existing workbook: %w", err)
	}
	return f.SaveAs(path)
}

// Build renders sheet into a new in-memory workbook.
func (w *XLSXWriter) Build(sheet *Sheet) (*excelize.File, error) {
	name := w.SheetName
	if name == "" {
		name = DefaultSheetName
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(sheet.Columns))
	for i, c := range sheet.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for rowIdx, row := range sheet.Rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			f.Close()
			return nil, err
		}
	}

	for colIdx, width := range ColumnWidths(sheet) {
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		if err := f.SetColWidth(name, col, col, width); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// ColumnWidths returns, per column, the longest value or header length in
// characters plus one.
func ColumnWidths(sheet *Sheet) []float64 {
	widths := make([]float64, len(sheet.Columns))
	for i, c := range sheet.Columns {
		n := utf8.RuneCountInString(c)
		for _, row := range sheet.Rows {
			if i < len(row) {
				n = max(n, utf8.RuneCountInString(row[i]))
			}
		}
		widths[i] = float64(min(n+1, maxColumnWidth))
	}
	return widths
}
