package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := Default()
	if s.Theme != want.Theme {
		t.Errorf("expected default theme, got %+v", s.Theme)
	}
	if s.Keys != want.Keys {
		t.Errorf("expected default keys, got %+v", s.Keys)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeSettings(t, "{not json")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeSettings(t, `{
		"theme": {"accent": "#ff0000"},
		"keys": {"quit": "x"},
		"tabs": ["alpha", "beta"],
		"last_tab": 1
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if s.Theme.Accent != "#ff0000" {
		t.Errorf("expected accent override, got %s", s.Theme.Accent)
	}
	if s.Theme.Foreground != Default().Theme.Foreground {
		t.Errorf("expected default foreground, got %s", s.Theme.Foreground)
	}
	if s.Keys.Quit != 'x' {
		t.Errorf("expected quit binding x, got %c", s.Keys.Quit)
	}
	if s.Keys.Refresh != Default().Keys.Refresh {
		t.Errorf("expected default refresh binding, got %c", s.Keys.Refresh)
	}
	if len(s.Tabs) != 2 || s.Tabs[0] != "alpha" || s.Tabs[1] != "beta" {
		t.Errorf("expected [alpha beta], got %v", s.Tabs)
	}
	if s.LastTab != 1 {
		t.Errorf("expected last tab 1, got %d", s.LastTab)
	}
}

func TestLoad_LastTabOutOfRange(t *testing.T) {
	path := writeSettings(t, `{"tabs": ["only"], "last_tab": 7}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.LastTab != 0 {
		t.Errorf("expected clamped last tab 0, got %d", s.LastTab)
	}
}

func TestSaveLastTab(t *testing.T) {
	path := writeSettings(t, `{"tabs": ["a", "b"], "theme": {"accent": "#ff0000"}}`)

	if err := SaveLastTab(path, 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if s.LastTab != 1 {
		t.Errorf("expected last tab 1, got %d", s.LastTab)
	}

	// Other fields survive the rewrite.
	if s.Theme.Accent != "#ff0000" {
		t.Errorf("expected accent preserved, got %s", s.Theme.Accent)
	}
}

func TestSaveLastTab_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	if err := SaveLastTab(path, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected settings file to be created")
	}
}
