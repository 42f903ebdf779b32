package parser

import "fmt"

// NameParseError reports a name-header cell that does not have the
// "first-name-portion last-name" shape.
type NameParseError struct {
	// Text is the offending raw cell text.
	Text string
}

func (e *NameParseError) Error() string {
	return fmt.Sprintf("failed to find a name in %q", e.Text)
}

// NewNameParseError creates a new NameParseError.
func NewNameParseError(text string) *NameParseError {
	return &NameParseError{Text: text}
}
