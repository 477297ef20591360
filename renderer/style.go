package renderer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode decides when ANSI colours are written.
type ColorMode int

const (
	// ColorAuto colours the output only when it is a capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways always writes ANSI colour codes.
	ColorAlways
	// ColorNever never writes colour codes.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("unknown color mode: %q", s)
	}
}

// Style holds the text styles of the interactive output.
//
// A Style is bound to the writer it was created for, so that colours are only
// written where they can be displayed.
type Style struct {
	Title  lipgloss.Style // menu titles and file operations
	Prompt lipgloss.Style // field prompts
	Option lipgloss.Style // sort and filter dialogs
	Info   lipgloss.Style // savings
	Error  lipgloss.Style
}

// NewStyle returns the default colours for w.
func NewStyle(w io.Writer, mode ColorMode) Style {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return Style{
		Title:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Prompt: r.NewStyle().Foreground(lipgloss.Color("4")),
		Option: r.NewStyle().Foreground(lipgloss.Color("3")),
		Info:   r.NewStyle().Foreground(lipgloss.Color("6")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
