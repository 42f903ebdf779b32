package addrbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()

	assert.Equal(t, 3, s.TableIndex)
	assert.Equal(t, 1, s.PrimaryColumn)
	assert.Equal(t, 2, s.SecondaryColumn)
	assert.Equal(t, "Contacts", s.SheetName)
	assert.NoError(t, s.Validate())
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Schema)
	}{
		{"negative table", func(s *Schema) { s.TableIndex = -1 }},
		{"negative column", func(s *Schema) { s.PrimaryColumn = -1 }},
		{"same columns", func(s *Schema) { s.SecondaryColumn = s.PrimaryColumn }},
		{"empty sheet name", func(s *Schema) { s.SheetName = "" }},
		{"long sheet name", func(s *Schema) { s.SheetName = "a sheet name that is far too long for excel" }},
		{"blank sentinel", func(s *Schema) { s.NoteSentinels = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchema()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSchema)
		})
	}
}

func TestParseSchemaKeepsDefaults(t *testing.T) {
	s, err := ParseSchema([]byte("table_index: 0\nnote_sentinels: [SSUC, YOGA]\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, s.TableIndex)
	assert.Equal(t, 1, s.PrimaryColumn)
	assert.Equal(t, []string{"SSUC", "YOGA"}, s.NoteSentinels)
	assert.Equal(t, []string{`"zoom yoga 2020"`}, s.JunkValues)
}

func TestParseSchemaErrors(t *testing.T) {
	_, err := ParseSchema([]byte("table_index: [oops"))
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = ParseSchema([]byte("primary_column: 2\n"))
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet_name: Yoga\n"), 0644))

	s, err := LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "Yoga", s.SheetName)

	_, err = LoadSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
