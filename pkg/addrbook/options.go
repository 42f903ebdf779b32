// Package addrbook extracts contact records from exported address-book
// documents and writes them as a sorted workbook.
package addrbook

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/output"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/parser"
)

// Schema describes where contact data sits in the source document.
//
// The defaults match the webmail contact-group print export: the fourth
// table, names/emails/phones/notes in column 1 and misplaced entries in
// column 2 (all 0-based). The layout belongs to the exporting tool and can
// change without notice, which is why it is configurable.
type Schema struct {
	// TableIndex selects the contact table (0-based, document order).
	TableIndex int `yaml:"table_index" validate:"gte=0"`
	// PrimaryColumn holds the cells that are classified into records.
	PrimaryColumn int `yaml:"primary_column" validate:"gte=0"`
	// SecondaryColumn is scanned only for export anomalies.
	SecondaryColumn int `yaml:"secondary_column" validate:"gte=0,nefield=PrimaryColumn"`
	// JunkValues are primary-column values that are always ignored.
	JunkValues []string `yaml:"junk_values" validate:"dive,required"`
	// NoteSentinels are capitalized values that are notes, not names.
	NoteSentinels []string `yaml:"note_sentinels" validate:"dive,required"`
	// SheetName is the output worksheet name.
	SheetName string `yaml:"sheet_name" validate:"required,max=31"`
}

// DefaultSchema returns the schema of the reference export layout.
func DefaultSchema() Schema {
	return Schema{
		TableIndex:      3,
		PrimaryColumn:   1,
		SecondaryColumn: 2,
		JunkValues:      []string{`"zoom yoga 2020"`},
		NoteSentinels:   []string{"SSUC"},
		SheetName:       output.DefaultSheetName,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the schema's field constraints.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return nil
}

// Rules returns the classifier rules carried by the schema.
func (s Schema) Rules() parser.Rules {
	return parser.Rules{
		JunkValues:    s.JunkValues,
		NoteSentinels: s.NoteSentinels,
	}
}

// ParseSchema decodes a YAML schema. Keys absent from data keep their
// DefaultSchema values.
func ParseSchema(data []byte) (Schema, error) {
	s := DefaultSchema()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// LoadSchema reads a YAML schema file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to read schema: %w", err)
	}
	return ParseSchema(data)
}

// Options configures extraction and export.
type Options struct {
	// Schema locates the contact data in the source document.
	Schema Schema
	// LowercaseEmails trims and lowercases email cells.
	LowercaseEmails bool
	// Logger receives progress output. If nil, logging is disabled.
	Logger *zap.Logger
	// OnWarnings, if set, receives the anomaly list of each run after the
	// secondary-column scan and before any record is assembled.
	OnWarnings func(names []string)
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Schema: DefaultSchema(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
