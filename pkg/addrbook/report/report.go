// Package report delivers anomaly warnings and run summaries to an operator.
package report

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Summary describes a completed export.
type Summary struct {
	// Count is the number of contacts written.
	Count int
	// Path is the workbook location.
	Path string
}

// Notifier receives the anomaly list before export and a summary after it.
type Notifier interface {
	Warnings(names []string)
	Done(s Summary)
}

// RenderWarnings formats the anomaly list as an operator message. It returns
// an empty string when there is nothing to report.
func RenderWarnings(names []string) string {
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Contact information for the following people was not exported properly:\n\n")
	b.WriteString(strings.Join(names, "\n"))
	b.WriteString("\n\nProcessing will continue, but these entries must be added to the final workbook manually.\n")
	return b.String()
}

// RenderSummary formats the completion message.
func RenderSummary(s Summary) string {
	return fmt.Sprintf("Contact list has been saved to an excel workbook at the following location:\n\n%s\n\nNumber of contacts found: %d\n", s.Path, s.Count)
}

// TextNotifier writes human-readable messages to Out.
type TextNotifier struct {
	Out io.Writer
}

func (n *TextNotifier) Warnings(names []string) {
	if msg := RenderWarnings(names); msg != "" {
		fmt.Fprint(n.Out, msg)
	}
}

func (n *TextNotifier) Done(s Summary) {
	fmt.Fprint(n.Out, RenderSummary(s))
}

// LogNotifier writes structured log entries.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Warnings(names []string) {
	if len(names) == 0 {
		return
	}
	n.Logger.Warn("contacts not exported properly", zap.Strings("names", names))
}

func (n *LogNotifier) Done(s Summary) {
	n.Logger.Info("contact list saved", zap.String("path", s.Path), zap.Int("contacts", s.Count))
}

// Multi fans notifications out to every notifier in order.
type Multi []Notifier

func (m Multi) Warnings(names []string) {
	for _, n := range m {
		n.Warnings(names)
	}
}

func (m Multi) Done(s Summary) {
	for _, n := range m {
		n.Done(s)
	}
}
