// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/types"
	"github.com/arthur-debert/graftree/pkg/ui/display"
	"github.com/arthur-debert/graftree/pkg/ui/styles"
)

// Renderer provides rich terminal output using the style registry
type Renderer struct {
	output io.Writer
	styles *styles.Registry
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		styles: styles.Default(),
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.GraftResult:
		return r.writeLines(display.Lines(display.FromResult(v), r.styles.Render))
	case display.Summary:
		return r.writeLines(display.Lines(v, r.styles.Render))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	line := r.styles.Render("Failed", "Error:") + " " + r.styles.Render("Error", err.Error())
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line += " " + r.styles.Render("Muted", "["+string(code)+"]")
	}
	_, werr := fmt.Fprintln(r.output, line)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Render("Plan", msg))
	return err
}

func (r *Renderer) writeLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}
