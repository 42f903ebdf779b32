package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

func record(first, last string, kv ...string) models.ContactRecord {
	c := models.NewContactRecord(first, last)
	for i := 0; i+1 < len(kv); i += 2 {
		c.Set(models.Field(kv[i]), kv[i+1])
	}
	if !c.Has(models.FieldNotes) {
		c.Set(models.FieldNotes, "")
	}
	return *c
}

func TestFormatSortsAndDropsColumns(t *testing.T) {
	records := []models.ContactRecord{
		record("John", "Smith", "Email", "john@x.com", "Phone", "555-123-4567"),
		record("Ann", "Adams", "Notes", "yoga"),
		record("Zed", "Smith", "Email", "zed@x.com"),
	}

	sheet := Format(records)

	assert.Equal(t, []string{"Name", "Email", "Notes"}, sheet.Columns)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, []string{"Adams, Ann", "", "yoga"}, sheet.Rows[0])
	assert.Equal(t, []string{"Smith, John", "john@x.com", ""}, sheet.Rows[1])
	assert.Equal(t, []string{"Smith, Zed", "zed@x.com", ""}, sheet.Rows[2])

	// Input order is untouched.
	assert.Equal(t, "Smith", records[0].LastName)
}

func TestFormatColumnsFollowInputOrder(t *testing.T) {
	records := []models.ContactRecord{
		record("John", "Smith", "Notes", "tea", "Email", "john@x.com"),
		record("Ann", "Adams", "Email", "ann@x.com"),
	}

	sheet := Format(records)

	assert.Equal(t, []string{"Name", "Notes", "Email"}, sheet.Columns)
	assert.Equal(t, []string{"Adams, Ann", "", "ann@x.com"}, sheet.Rows[0])
}

func TestFormatWithKeepsPhone(t *testing.T) {
	records := []models.ContactRecord{record("John", "Smith", "Phone", "555-123-4567")}

	sheet := FormatWith(records, []models.Field{models.FieldLastName})

	assert.Equal(t, []string{"Name", "Phone", "Notes"}, sheet.Columns)
	assert.Equal(t, "555-123-4567", sheet.Rows[0][1])
}

func TestFormatEmpty(t *testing.T) {
	sheet := Format(nil)

	assert.Empty(t, sheet.Columns)
	assert.Empty(t, sheet.Rows)
}

func TestColumnWidths(t *testing.T) {
	sheet := &Sheet{
		Columns: []string{"Name", "Notes"},
		Rows: [][]string{
			{"Smith, John", ""},
			{"Müller, Zoë", strings.Repeat("x", 400)},
		},
	}

	assert.Equal(t, []float64{12, 255}, ColumnWidths(sheet))
}
