package term

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"one", "hello", 1, "…"},
		{"wide fits", "日本語", 6, "日本語"},
		{"wide cut", "日本語テスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
			if w := Width(got); w > tt.maxWidth {
				t.Errorf("result width %d exceeds max %d", w, tt.maxWidth)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	if w := Width("hello"); w != 5 {
		t.Errorf("expected width 5, got %d", w)
	}
	if w := Width("日本語"); w != 6 {
		t.Errorf("expected width 6, got %d", w)
	}
}
