package parser

import (
	"regexp"
	"strings"
)

// namePattern captures everything before the last whitespace run as the
// first name and a trailing letters/apostrophes token as the last name.
var namePattern = regexp.MustCompile(`^(.*?)\s+(\p{L}[\p{L}']+)$`)

// SplitName splits a name-header value into first and last name.
// The last whitespace-delimited token is always the last name, so
// "Mary Jane Smith" yields ("Mary Jane", "Smith"). Single-token values fail
// with a *NameParseError.
func SplitName(s string) (first, last string, err error) {
	m := namePattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", NewNameParseError(s)
	}
	first = strings.TrimSpace(m[1])
	if first == "" {
		return "", "", NewNameParseError(s)
	}
	return first, m[2], nil
}

// NormalizeEmail trims spaces and lowercases an email address.
// It does not validate the format.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
