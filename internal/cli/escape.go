package cli

import "strings"

var (
	unescaper = strings.NewReplacer(`\n`, "\n")
	escaper   = strings.NewReplacer("\n", `\n`, "|", `\|`)
)

// Unescape turns the two-character sequence `\n` into a newline so headers
// like "//;\n1;2" can be typed on a single line.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// Escape is the display form of an input: newlines become `\n`.
func Escape(s string) string {
	return escaper.Replace(s)
}
