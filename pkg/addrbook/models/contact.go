package models

// Field names a ContactRecord key. The string value is also the output
// column header.
type Field string

const (
	FieldName     Field = "Name"
	FieldLastName Field = "LastName"
	FieldEmail    Field = "Email"
	FieldPhone    Field = "Phone"
	FieldNotes    Field = "Notes"
)

// ContactRecord represents one extracted contact.
type ContactRecord struct {
	// Name is the display form "Last, First".
	Name string `json:"name"`
	// LastName is the sort key.
	LastName string `json:"last_name"`
	// Email is the last email cell seen for the contact (optional).
	Email string `json:"email,omitempty"`
	// Phone is the last phone cell seen for the contact (optional).
	Phone string `json:"phone,omitempty"`
	// Notes holds note fragments joined by ", ".
	Notes string `json:"notes"`
	// Fields lists the keys that have been set, in first-set order.
	Fields []Field `json:"-"`
}

// NewContactRecord starts a record from a split name.
func NewContactRecord(first, last string) *ContactRecord {
	c := &ContactRecord{}
	c.Set(FieldName, last+", "+first)
	c.Set(FieldLastName, last)
	return c
}

// Set assigns value to field, overwriting any earlier value.
func (c *ContactRecord) Set(field Field, value string) {
	switch field {
	case FieldName:
		c.Name = value
	case FieldLastName:
		c.LastName = value
	case FieldEmail:
		c.Email = value
	case FieldPhone:
		c.Phone = value
	case FieldNotes:
		c.Notes = value
	default:
		return
	}
	if !c.Has(field) {
		c.Fields = append(c.Fields, field)
	}
}

// AppendNote adds a note fragment, joining with ", " when notes are present.
func (c *ContactRecord) AppendNote(note string) {
	if !c.Has(FieldNotes) {
		c.Set(FieldNotes, note)
		return
	}
	c.Set(FieldNotes, c.Notes+", "+note)
}

// Has reports whether field has been set on the record.
func (c *ContactRecord) Has(field Field) bool {
	for _, f := range c.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Get returns the value stored for field.
func (c *ContactRecord) Get(field Field) string {
	switch field {
	case FieldName:
		return c.Name
	case FieldLastName:
		return c.LastName
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	case FieldNotes:
		return c.Notes
	}
	return ""
}

// Result is the output of one pipeline run.
type Result struct {
	// Records contains contacts in input order.
	Records []ContactRecord `json:"records"`
	// Warnings contains secondary-column anomalies in first-seen order.
	Warnings []string `json:"warnings"`
}
