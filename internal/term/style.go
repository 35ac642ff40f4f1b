package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Style is a foreground/background pair with attributes.
type Style struct {
	Foreground colorful.Color
	Background colorful.Color
	Bold       bool
	Reverse    bool
}

// tcellStyle converts the style to tcell's representation.
func (s Style) tcellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcellColor(s.Foreground)).
		Background(toTcellColor(s.Background)).
		Bold(s.Bold).
		Reverse(s.Reverse)
}

func toTcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Theme holds the demo's palette.
type Theme struct {
	Foreground colorful.Color
	Background colorful.Color
	Accent     colorful.Color
}

// ParseTheme builds a theme from hex color strings ("#RRGGBB").
func ParseTheme(fg, bg, accent string) (Theme, error) {
	var t Theme
	var err error

	if t.Foreground, err = colorful.Hex(fg); err != nil {
		return Theme{}, err
	}
	if t.Background, err = colorful.Hex(bg); err != nil {
		return Theme{}, err
	}
	if t.Accent, err = colorful.Hex(accent); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// DefaultTheme returns the fallback palette.
func DefaultTheme() Theme {
	fg, _ := colorful.Hex("#d8dee9")
	bg, _ := colorful.Hex("#2e3440")
	accent, _ := colorful.Hex("#88c0d0")
	return Theme{Foreground: fg, Background: bg, Accent: accent}
}

// Base is the default text style.
func (t Theme) Base() Style {
	return Style{Foreground: t.Foreground, Background: t.Background}
}

// Tab styles a tab title. The selected tab gets the accent background;
// unselected tabs get a foreground dimmed toward the background.
func (t Theme) Tab(selected bool) Style {
	if selected {
		return Style{Foreground: t.Background, Background: t.Accent, Bold: true}
	}
	return Style{
		Foreground: t.Foreground.BlendLab(t.Background, 0.4),
		Background: t.Background,
	}
}

// Status styles the bottom status line.
func (t Theme) Status() Style {
	return Style{
		Foreground: t.Foreground,
		Background: t.Background.BlendLab(t.Foreground, 0.12),
	}
}
