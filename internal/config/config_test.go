package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe", "config.json")

	m := NewManager()
	if err := m.LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
	if m.Path() != path {
		t.Errorf("expected path %q, got %q", path, m.Path())
	}
	cfg := m.Get()
	if cfg.Editor.MaxFileSize != 8<<20 || !cfg.Workspace.RestoreLastRoot {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"ui": {"theme": "dark"}, "search": {"maxResults": 10}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg := m.Get()
	if !m.IsDarkMode() {
		t.Error("expected dark theme from file")
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("expected maxResults 10, got %d", cfg.Search.MaxResults)
	}
	if cfg.UI.SidebarWidth != 260 {
		t.Errorf("expected default sidebar width, got %d", cfg.UI.SidebarWidth)
	}
	if cfg.Editor.TextSize != 14 {
		t.Errorf("expected default text size, got %d", cfg.Editor.TextSize)
	}
}

func TestLoadParseErrorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.LoadFrom(path); err != nil {
		t.Fatalf("expected nil error on parse failure, got %v", err)
	}
	if m.ParseError() == nil {
		t.Error("expected ParseError to be recorded")
	}
	if m.Get().UI.Theme != "light" {
		t.Error("expected defaults after parse error")
	}
}

func TestSetThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewManager()
	if err := m.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	if err := m.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}

	reloaded := NewManager()
	if err := reloaded.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	if !reloaded.IsDarkMode() {
		t.Error("expected theme to persist")
	}
}

func TestSetThemeKeepsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	original := `{"ui":{"theme":"dark","sidebarWidth":5000},"search":{"exclude":["vendor"]}}`
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if m.ParseError() == nil {
		t.Fatal("expected validation error for sidebarWidth")
	}

	err := m.SetTheme("light")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if m.IsDarkMode() {
		t.Error("expected theme change to apply in memory")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("config file was rewritten: %s", data)
	}
}

func TestSaveAfterValidLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"search":{"exclude":["vendor"]}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	if err := m.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	if err := m.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}

	reloaded := NewManager()
	if err := reloaded.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	if ex := reloaded.Get().Search.Exclude; len(ex) != 1 || ex[0] != "vendor" {
		t.Errorf("expected exclude to survive save, got %v", ex)
	}
	if !reloaded.IsDarkMode() {
		t.Error("expected theme to persist")
	}
}

func TestGenerateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	backup, err := GenerateConfig(path)
	if err != nil {
		t.Fatalf("GenerateConfig: %v", err)
	}
	if backup != "" {
		t.Errorf("expected no backup for a fresh config, got %q", backup)
	}

	if err := os.WriteFile(path, []byte(`{"ui":{"theme":"dark"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	backup, err = GenerateConfig(path)
	if err != nil {
		t.Fatalf("GenerateConfig: %v", err)
	}
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	if string(data) != `{"ui":{"theme":"dark"}}` {
		t.Errorf("backup content mismatch: %s", data)
	}

	m := NewManager()
	m.LoadFrom(path)
	if m.IsDarkMode() {
		t.Error("expected regenerated defaults")
	}
}

func TestToastDuration(t *testing.T) {
	if d := (UIConfig{}).ToastDuration(); d != 4*time.Second {
		t.Errorf("expected fallback 4s, got %s", d)
	}
	if d := (UIConfig{ToastSeconds: 2}).ToastDuration(); d != 2*time.Second {
		t.Errorf("expected 2s, got %s", d)
	}
}
