// Package output formats contact records and writes them as a workbook or JSON.
package output

import (
	"slices"
	"strings"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// DefaultDroppedFields are the record keys left out of the emitted sheet.
var DefaultDroppedFields = []models.Field{models.FieldLastName, models.FieldPhone}

// Sheet is a formatted table ready for a SheetWriter.
type Sheet struct {
	// Columns is the header row.
	Columns []string `json:"columns"`
	// Rows holds one entry per record, aligned with Columns.
	Rows [][]string `json:"rows"`
}

// Format sorts records by last name (stable, lexicographic), drops the
// DefaultDroppedFields and lays the remaining keys out as columns in the
// order they were first seen in the unsorted input. The input slice is not
// modified.
func Format(records []models.ContactRecord) *Sheet {
	return FormatWith(records, DefaultDroppedFields)
}

// FormatWith is Format with an explicit set of dropped fields.
func FormatWith(records []models.ContactRecord, dropped []models.Field) *Sheet {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.ContactRecord) int {
		return strings.Compare(a.LastName, b.LastName)
	})

	var fields []models.Field
	for _, rec := range records {
		for _, f := range rec.Fields {
			if slices.Contains(dropped, f) || slices.Contains(fields, f) {
				continue
			}
			fields = append(fields, f)
		}
	}

	sheet := &Sheet{
		Columns: make([]string, len(fields)),
		Rows:    make([][]string, 0, len(sorted)),
	}
	for i, f := range fields {
		sheet.Columns[i] = string(f)
	}
	for _, rec := range sorted {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = rec.Get(f)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}
