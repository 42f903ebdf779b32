package parser

import (
	"go.uber.org/zap"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// State is the Assembler's accumulation state.
type State int

const (
	// NoCurrentRecord means no name header has been seen since the last reset.
	NoCurrentRecord State = iota
	// AccumulatingRecord means a record is open and receiving fields.
	AccumulatingRecord
)

// AssemblerOptions configures an Assembler.
type AssemblerOptions struct {
	// LowercaseEmails normalizes email cells with NormalizeEmail.
	LowercaseEmails bool
	// Logger receives per-record debug output. Nil disables logging.
	Logger *zap.Logger
}

// Assembler groups a linear sequence of classified cells into contact
// records. A name header closes the open record and starts the next one.
type Assembler struct {
	classifier *Classifier
	opts       AssemblerOptions
	log        *zap.Logger

	current  *models.ContactRecord
	records  []models.ContactRecord
	orphaned int
}

// NewAssembler creates an Assembler that classifies cells with classifier.
func NewAssembler(classifier *Classifier, opts AssemblerOptions) *Assembler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		classifier: classifier,
		opts:       opts,
		log:        log,
	}
}

// Reset discards the open record and all closed records.
func (a *Assembler) Reset() {
	a.current = nil
	a.records = nil
	a.orphaned = 0
}

// State returns the current accumulation state.
func (a *Assembler) State() State {
	if a.current == nil {
		return NoCurrentRecord
	}
	return AccumulatingRecord
}

// Orphaned returns how many fields arrived before any name header.
func (a *Assembler) Orphaned() int {
	return a.orphaned
}

// Feed classifies cell and applies it to the open record.
// A name header that cannot be split returns a *NameParseError.
func (a *Assembler) Feed(cell models.Cell) error {
	cat := a.classifier.Classify(cell)
	switch cat {
	case Ignorable:
		if !cell.IsNull() && IsGarbageID(cell.Value) {
			a.log.Debug("garbage id suppressed", zap.String("text", cell.Value))
		}
		return nil
	case NameHeader:
		first, last, err := SplitName(cell.Value)
		if err != nil {
			return err
		}
		a.close()
		a.current = models.NewContactRecord(first, last)
		return nil
	}

	if a.current == nil {
		a.orphaned++
		a.log.Warn("field before first contact dropped",
			zap.Stringer("category", cat),
			zap.String("text", cell.Value))
		return nil
	}

	switch cat {
	case Email:
		v := cell.Value
		if a.opts.LowercaseEmails {
			v = NormalizeEmail(v)
		}
		a.current.Set(models.FieldEmail, v)
	case Phone:
		a.current.Set(models.FieldPhone, cell.Value)
	case Note:
		a.current.AppendNote(cell.Value)
	}
	return nil
}

// Finish closes the open record, if any, and returns every record in input
// order. Records without notes get an empty Notes field.
func (a *Assembler) Finish() []models.ContactRecord {
	a.close()
	for i := range a.records {
		if !a.records[i].Has(models.FieldNotes) {
			a.records[i].Set(models.FieldNotes, "")
		}
	}
	out := a.records
	a.records = nil
	return out
}

func (a *Assembler) close() {
	if a.current == nil {
		return
	}
	a.log.Debug("contact added",
		zap.String("name", a.current.Name),
		zap.String("email", a.current.Email),
		zap.String("phone", a.current.Phone),
		zap.String("notes", a.current.Notes))
	a.records = append(a.records, *a.current)
	a.current = nil
}
