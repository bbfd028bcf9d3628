package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects a renderer
type Format int

const (
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// formatAliases maps every accepted --format value, lowercased
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat accepts the canonical names and their aliases, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q (expected auto, term, text or json)", s)
}

// Resolve combines the --format and --no-color flags. No color downgrades
// terminal output to text and leaves JSON alone.
func Resolve(format string, noColor bool) (Format, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return FormatAuto, err
	}
	if noColor && f != FormatJSON && f != FormatText {
		return FormatText, nil
	}
	return f, nil
}

// DetectFormat picks styled output for a color-capable terminal with
// NO_COLOR unset, and plain text for everything else (pipes, files, dumb
// terminals).
func DetectFormat(output *os.File) Format {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return FormatText
	case !isTerminal(output):
		return FormatText
	case termenv.NewOutput(output).ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
