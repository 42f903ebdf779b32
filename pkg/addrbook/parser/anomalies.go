package parser

import "github.com/ukaji3/addrbook-go/pkg/addrbook/models"

// AnomalyReporter collects secondary-column values. A value in that column
// means the exporting tool placed a contact's data in the wrong column; the
// reporter only surfaces it so an operator can reconcile it by hand.
type AnomalyReporter struct {
	seen     map[string]struct{}
	warnings []string
}

// NewAnomalyReporter creates an empty AnomalyReporter.
func NewAnomalyReporter() *AnomalyReporter {
	return &AnomalyReporter{seen: make(map[string]struct{})}
}

// Reset discards all collected warnings.
func (r *AnomalyReporter) Reset() {
	r.seen = make(map[string]struct{})
	r.warnings = nil
}

// Observe records a non-null cell value not seen before.
func (r *AnomalyReporter) Observe(cell models.Cell) {
	if cell.IsNull() {
		return
	}
	if _, ok := r.seen[cell.Value]; ok {
		return
	}
	r.seen[cell.Value] = struct{}{}
	r.warnings = append(r.warnings, cell.Value)
}

// Warnings returns the collected values in first-seen order.
func (r *AnomalyReporter) Warnings() []string {
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// ReportAnomalies returns the distinct non-null values of cells in
// first-seen order.
func ReportAnomalies(cells []models.Cell) []string {
	r := NewAnomalyReporter()
	for _, c := range cells {
		r.Observe(c)
	}
	return r.Warnings()
}
