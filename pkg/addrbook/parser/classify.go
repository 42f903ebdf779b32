// Package parser provides cell classification and contact record assembly.
package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// Category is the semantic class of a primary-column cell.
type Category int

const (
	// Ignorable cells contribute nothing.
	Ignorable Category = iota
	// NameHeader cells start a new contact record.
	NameHeader
	// Email cells set the current record's email.
	Email
	// Phone cells set the current record's phone.
	Phone
	// Note cells are appended to the current record's notes.
	Note
)

func (c Category) String() string {
	switch c {
	case Ignorable:
		return "ignorable"
	case NameHeader:
		return "name-header"
	case Email:
		return "email"
	case Phone:
		return "phone"
	case Note:
		return "note"
	}
	return "unknown"
}

// garbageIDPattern matches internal identifiers leaking into exported cells.
var garbageIDPattern = regexp.MustCompile(`[a-f0-9]{4}-[a-f0-9]{4}`)

// Rules holds the configurable values consulted by the Classifier.
type Rules struct {
	// JunkValues are exact cell values that are always ignored.
	JunkValues []string
	// NoteSentinels are exact cell values that would otherwise look like a
	// name header but mark an aggregated-notes row.
	NoteSentinels []string
}

// Classifier decides the Category of primary-column cells.
type Classifier struct {
	junk      map[string]struct{}
	sentinels map[string]struct{}
}

// NewClassifier creates a Classifier from rules.
func NewClassifier(rules Rules) *Classifier {
	c := &Classifier{
		junk:      make(map[string]struct{}, len(rules.JunkValues)),
		sentinels: make(map[string]struct{}, len(rules.NoteSentinels)),
	}
	for _, v := range rules.JunkValues {
		c.junk[v] = struct{}{}
	}
	for _, v := range rules.NoteSentinels {
		c.sentinels[v] = struct{}{}
	}
	return c
}

// Classify returns the Category of a cell. Null cells are Ignorable.
func (c *Classifier) Classify(cell models.Cell) Category {
	if cell.IsNull() {
		return Ignorable
	}
	return c.ClassifyText(cell.Value)
}

// ClassifyText returns the Category of a cell value.
//
// Rules apply in order: empty and junk values are ignored, garbage ids are
// suppressed, an uppercase first letter marks a name header unless the value
// is a note sentinel, "@" marks an email, two or more hyphens without a colon
// mark a phone (a colon indicates a timestamp), and anything else is a note.
func (c *Classifier) ClassifyText(s string) Category {
	if s == "" {
		return Ignorable
	}
	if _, ok := c.junk[s]; ok {
		return Ignorable
	}
	if IsGarbageID(s) {
		return Ignorable
	}

	first, _ := utf8.DecodeRuneInString(s)
	switch {
	case unicode.IsUpper(first):
		if _, ok := c.sentinels[s]; ok {
			return Note
		}
		return NameHeader
	case strings.Contains(s, "@"):
		return Email
	case strings.Count(s, "-") >= 2 && !strings.Contains(s, ":"):
		return Phone
	default:
		return Note
	}
}

// IsGarbageID reports whether s contains an internal hex-hyphen-hex identifier.
func IsGarbageID(s string) bool {
	return garbageIDPattern.MatchString(s)
}
