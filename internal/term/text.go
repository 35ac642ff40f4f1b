package term

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the display width of a string in terminal cells.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens a string to at most maxWidth display cells, ending
// with an ellipsis when anything was cut. Grapheme clusters are never
// split, so wide runes and combining marks stay intact.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if width+w > maxWidth-1 {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	b.WriteRune('…')
	return b.String()
}
