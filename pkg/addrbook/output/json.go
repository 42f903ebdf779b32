package output

import (
	"encoding/json"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// ToJSON serializes a pipeline result.
func ToJSON(result *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
