// Package config loads the demo application's settings file.
//
// Settings live in a small JSON document. A missing file yields the
// defaults; a file that is not valid JSON is an error. Individual fields
// are optional and fall back to their defaults.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidConfig is returned when the settings file is not valid JSON.
var ErrInvalidConfig = errors.New("config: invalid settings file")

// ThemeColors holds the palette as hex strings.
type ThemeColors struct {
	Foreground string
	Background string
	Accent     string
}

// Keybinds maps actions to their trigger runes.
type Keybinds struct {
	Quit    rune
	Back    rune
	Refresh rune
}

// Settings is the demo application configuration.
type Settings struct {
	Theme   ThemeColors
	Keys    Keybinds
	Tabs    []string
	LastTab int
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Theme: ThemeColors{
			Foreground: "#d8dee9",
			Background: "#2e3440",
			Accent:     "#88c0d0",
		},
		Keys: Keybinds{
			Quit:    'q',
			Back:    'b',
			Refresh: 'r',
		},
		Tabs:    []string{"overview", "logs", "metrics"},
		LastTab: 0,
	}
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	if !gjson.ValidBytes(data) {
		return Settings{}, ErrInvalidConfig
	}

	s := Default()

	if res := gjson.GetBytes(data, "theme.foreground"); res.Exists() {
		s.Theme.Foreground = res.String()
	}
	if res := gjson.GetBytes(data, "theme.background"); res.Exists() {
		s.Theme.Background = res.String()
	}
	if res := gjson.GetBytes(data, "theme.accent"); res.Exists() {
		s.Theme.Accent = res.String()
	}

	if res := gjson.GetBytes(data, "keys.quit"); res.Exists() {
		s.Keys.Quit = keyRune(res, s.Keys.Quit)
	}
	if res := gjson.GetBytes(data, "keys.back"); res.Exists() {
		s.Keys.Back = keyRune(res, s.Keys.Back)
	}
	if res := gjson.GetBytes(data, "keys.refresh"); res.Exists() {
		s.Keys.Refresh = keyRune(res, s.Keys.Refresh)
	}

	if res := gjson.GetBytes(data, "tabs"); res.IsArray() {
		s.Tabs = s.Tabs[:0]
		for _, item := range res.Array() {
			if title := item.String(); title != "" {
				s.Tabs = append(s.Tabs, title)
			}
		}
	}

	if res := gjson.GetBytes(data, "last_tab"); res.Exists() {
		s.LastTab = int(res.Int())
	}
	if s.LastTab < 0 || s.LastTab >= len(s.Tabs) {
		s.LastTab = 0
	}

	return s, nil
}

// SaveLastTab persists the selected tab index back into the settings
// file, creating the file if needed and leaving every other field alone.
func SaveLastTab(path string, index int) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte("{}")
	} else if err != nil {
		return err
	}

	out, err := sjson.SetBytes(data, "last_tab", index)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// keyRune extracts the first rune of a one-character binding, falling
// back when the value is empty.
func keyRune(res gjson.Result, fallback rune) rune {
	for _, r := range res.String() {
		return r
	}
	return fallback
}
