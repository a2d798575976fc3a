package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the REPL greeting to w using the terminal's color profile.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	title := termenv.String(" strcalc ").Bold().Foreground(p.Color("#1e1b4b")).Background(p.Color("#a78bfa"))
	hint := termenv.String("type numbers like 1,2,3 or //[*][%]\\n1*2%3 · :help for commands").Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s v%s\n", title, version)
	fmt.Fprintln(w, hint)
	fmt.Fprintln(w)
}

// Success styles a result line.
func Success(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#4ade80")).String()
}

// Failure styles an error line.
func Failure(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#fb7185")).String()
}
