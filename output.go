package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

const defaultWrapWidth = 79

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	width  int
}

// newStyles binds styling to w. Writers that are not a terminal get the
// ASCII profile, so their text carries no escape sequences.
func newStyles(w io.Writer, width int) styles {
	r := lipgloss.NewRenderer(w)
	if !isTerminalWriter(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		header: r.NewStyle().Foreground(lipgloss.Color("245")),
		width:  width,
	}
}

func (st styles) wrap(text string) string {
	if st.width <= 0 {
		return text
	}
	return wordwrap.String(text, st.width)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func outWriter(g *Game) io.Writer {
	if g != nil && g.Out != nil {
		return g.Out
	}
	return os.Stdout
}

func outPrint(g *Game, a ...any) {
	_, _ = fmt.Fprint(outWriter(g), a...)
}

func outPrintln(g *Game, a ...any) {
	_, _ = fmt.Fprintln(outWriter(g), a...)
}

func outPrintf(g *Game, format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter(g), format, a...)
}
