package term

import "testing"

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme("#ffffff", "#000000", "#88c0d0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	r, g, b := theme.Foreground.RGB255()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("expected white foreground, got %d %d %d", r, g, b)
	}
}

func TestParseTheme_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		fg, bg, accent string
	}{
		{"bad foreground", "nope", "#000000", "#88c0d0"},
		{"bad background", "#ffffff", "", "#88c0d0"},
		{"bad accent", "#ffffff", "#000000", "#zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTheme(tt.fg, tt.bg, tt.accent); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestTheme_TabStyles(t *testing.T) {
	theme := DefaultTheme()

	selected := theme.Tab(true)
	if !selected.Bold {
		t.Error("expected selected tab to be bold")
	}
	if selected.Background != theme.Accent {
		t.Error("expected selected tab on accent background")
	}

	unselected := theme.Tab(false)
	if unselected.Bold {
		t.Error("expected unselected tab to be plain")
	}
	if unselected.Foreground == theme.Foreground {
		t.Error("expected unselected tab foreground to be dimmed")
	}
}
