package models

// Table is an ordered sequence of rows read from a source document.
type Table struct {
	// Index is the 0-based position of the table within its document.
	Index int `json:"index"`
	// Name is the table's source label (sheet name for workbooks, empty for HTML).
	Name string `json:"name,omitempty"`
	// Rows contains the data rows; header rows are not included.
	Rows []Row `json:"rows"`
}

// Column returns the cells of the 0-based column idx, one per row.
func (t Table) Column(idx int) []Cell {
	cells := make([]Cell, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells = append(cells, row.At(idx))
	}
	return cells
}

// Document is the sequence of tables read from one input file.
type Document struct {
	// Path is the file the tables were read from.
	Path string `json:"path"`
	// Tables contains tables in document order.
	Tables []Table `json:"tables"`
}
