package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/graftree/pkg/types"
)

// Styler decorates text with the named style
type Styler func(style, text string) string

// Plain is a Styler that leaves text untouched
func Plain(_ string, text string) string { return text }

// Lines lays out s one line per entry, decorating parts through style.
// Style names: Header, Path, Muted, Summary, Error and one per label
// (Copied, Linked, Exists, Missing, Failed, Plan).
func Lines(s Summary, style Styler) []string {
	lines := []string{style("Header", s.Header)}

	width := 0
	for _, row := range s.Rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}

	for _, row := range s.Rows {
		label := fmt.Sprintf("%-*s", width, row.Label)
		line := "  " + style(labelStyle(row.Label), label) + "  " + style("Path", row.Path)
		if row.Detail != "" {
			detailStyle := "Muted"
			if row.Outcome == types.OutcomeFailed {
				detailStyle = "Error"
			}
			line += "  " + style(detailStyle, row.Detail)
		}
		lines = append(lines, line)
	}

	if s.Ignore != "" {
		lines = append(lines, style("Muted", s.Ignore))
	}
	if s.Totals != "" {
		lines = append(lines, style("Summary", s.Totals))
	}
	return lines
}

func labelStyle(label string) string {
	if label == "" {
		return "Muted"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// TextRenderer provides minimal text output for graft results
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// Render outputs the summary without styling
func (r *TextRenderer) Render(s Summary) error {
	for _, line := range Lines(s, Plain) {
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return err
		}
	}
	return nil
}
