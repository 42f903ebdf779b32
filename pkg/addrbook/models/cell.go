// Package models defines data structures for address-book extraction.
package models

// Cell is a single table cell value. A cell with Valid == false is the
// null marker produced for empty positions.
type Cell struct {
	// Value is the cleaned cell text.
	Value string `json:"value"`
	// Valid reports whether the cell carries a value.
	Valid bool `json:"valid"`
}

// Text returns a non-null cell holding s.
func Text(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Null returns the null marker.
func Null() Cell {
	return Cell{}
}

// IsNull reports whether the cell is null or holds an empty string.
func (c Cell) IsNull() bool {
	return !c.Valid || c.Value == ""
}

// Row is an ordered sequence of cells.
type Row []Cell

// At returns the cell at the 0-based column index, or the null marker when
// the row is shorter than idx.
func (r Row) At(idx int) Cell {
	if idx < 0 || idx >= len(r) {
		return Null()
	}
	return r[idx]
}
