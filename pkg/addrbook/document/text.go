package document

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// cleanText collapses whitespace runs, trims, and NFC-normalizes s.
// Blank text becomes the null marker.
func cleanText(s string) models.Cell {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return models.Null()
	}
	return models.Text(norm.NFC.String(s))
}
