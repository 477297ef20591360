package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/etnz/expense/renderer"
)

// glamourStyle returns the glamour option matching the -color flag.
func glamourStyle() glamour.TermRendererOption {
	mode, err := renderer.ParseColorMode(*colorMode)
	if err != nil {
		return glamour.WithAutoStyle()
	}
	switch mode {
	case renderer.ColorNever:
		return glamour.WithStandardStyle(styles.NoTTYStyle)
	case renderer.ColorAlways:
		return glamour.WithStandardStyle(styles.DarkStyle)
	default:
		return glamour.WithAutoStyle()
	}
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamourStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.WithError(err).Debug("cannot create markdown renderer")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.WithError(err).Debug("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
