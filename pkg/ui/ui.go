// Package ui renders graft results in terminal (rich), text (plain) and
// JSON formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/graftree/pkg/ui/json"
	"github.com/arthur-debert/graftree/pkg/ui/terminal"
	"github.com/arthur-debert/graftree/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a *types.GraftResult or a display.Summary
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// Auto inspects output; writers that are not files get plain text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
