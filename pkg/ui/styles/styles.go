// Package styles holds the named lipgloss styles of graftree's terminal
// output, loaded from the embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	MarginTop  int    `yaml:"marginTop,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps style names to lipgloss styles
type Registry struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry *Registry

func init() {
	r, err := Load(embeddedStyles)
	if err != nil {
		r = &Registry{styles: map[string]lipgloss.Style{}}
	}
	defaultRegistry = r
}

// Default returns the registry built from the embedded styles
func Default() *Registry {
	return defaultRegistry
}

// Load builds a registry from YAML data
func Load(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		r.styles[name] = buildStyle(def, colors)
	}
	return r, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}

	return style
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Get safely retrieves a style; unknown names get an empty style
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func (r *Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}
