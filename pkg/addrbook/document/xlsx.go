package document

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// XLSXReader reads each worksheet of a workbook as one table.
type XLSXReader struct {
	// HeaderRows is the number of leading rows per sheet that are not data.
	HeaderRows int
}

// ReadTables reads every sheet of the workbook at path, in sheet order.
func (r *XLSXReader) ReadTables(path string) ([]models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.ReadFile(f)
}

// ReadFile reads every sheet of an open workbook.
func (r *XLSXReader) ReadFile(f *excelize.File) ([]models.Table, error) {
	var tables []models.Table
	for idx, sheetName := range f.GetSheetList() {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, err
		}
		if r.HeaderRows > 0 {
			if r.HeaderRows >= len(rows) {
				rows = nil
			} else {
				rows = rows[r.HeaderRows:]
			}
		}
		tables = append(tables, models.Table{
			Index: idx,
			Name:  sheetName,
			Rows:  rows,
		})
	}
	return tables, nil
}

// ExtractRows reads a sheet into rows. Row positions are preserved, so a
// blank sheet row becomes an empty Row rather than being dropped; trailing
// blank rows are trimmed.
func ExtractRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	last := lastDataRow(rows)
	result := make([]models.Row, 0, last+1)
	for rowIdx := 0; rowIdx <= last; rowIdx++ {
		row := make(models.Row, 0, len(rows[rowIdx]))
		for _, cellValue := range rows[rowIdx] {
			row = append(row, cleanText(cellValue))
		}
		result = append(result, row)
	}

	return result, nil
}

// lastDataRow returns the index of the last row holding a non-empty cell,
// or -1 when every row is empty.
func lastDataRow(rows [][]string) int {
	last := -1
	for rowIdx, row := range rows {
		for _, cell := range row {
			if cell != "" {
				last = rowIdx
				break
			}
		}
	}
	return last
}
