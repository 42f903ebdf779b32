package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXReaderReadTables(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Header"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "John   Smith"))
	require.NoError(t, f.SetCellValue("Sheet1", "B4", "john@x.com"))
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Other", "A1", "x"))

	tmpFile := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	tables, err := (&XLSXReader{HeaderRows: 1}).ReadTables(tmpFile)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "Sheet1", tables[0].Name)
	assert.Equal(t, "Other", tables[1].Name)

	rows := tables[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "John Smith", rows[0].At(1).Value)
	assert.True(t, rows[1].At(1).IsNull())
	assert.Equal(t, "john@x.com", rows[2].At(1).Value)
	assert.Empty(t, tables[1].Rows)
}

func TestLastDataRow(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
	}{
		{"nil", nil, -1},
		{"blank rows", [][]string{{""}, {}}, -1},
		{"trailing blanks", [][]string{{"a"}, {}, {"", "b"}, {""}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lastDataRow(tt.rows))
		})
	}
}
