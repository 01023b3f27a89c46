package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justyntemme/scribe/internal/config"
	"github.com/justyntemme/scribe/internal/ui"
	"github.com/justyntemme/scribe/internal/workspace"
)

func TestResolveRoot(t *testing.T) {
	last := func(root string, ok bool, err error) func() (string, bool, error) {
		return func() (string, bool, error) { return root, ok, err }
	}
	abs, _ := filepath.Abs("proj")

	tests := []struct {
		name     string
		arg      string
		restore  bool
		lastRoot func() (string, bool, error)
		want     string
	}{
		{"argument wins", "proj", true, last("/old", true, nil), abs},
		{"restore last root", "", true, last("/old", true, nil), "/old"},
		{"restore disabled", "", false, last("/old", true, nil), ""},
		{"nothing recorded", "", true, last("", false, nil), ""},
		{"lookup error", "", true, last("", false, errors.New("db closed")), ""},
		{"no database", "", true, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRoot(tt.arg, tt.restore, tt.lastRoot); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToAction(t *testing.T) {
	abs, _ := filepath.Abs("docs")
	tests := []struct {
		evt  ui.UIEvent
		want workspace.Action
	}{
		{ui.UIEvent{Action: ui.ActionOpenFile, Path: "/w/a.txt"}, workspace.OpenFile{Path: "/w/a.txt"}},
		{ui.UIEvent{Action: ui.ActionCloseFile}, workspace.CloseFile{}},
		{ui.UIEvent{Action: ui.ActionOpenFolder, Path: "docs"}, workspace.OpenFolder{Path: abs}},
		{ui.UIEvent{Action: ui.ActionSearch, Query: "ext:go"}, workspace.SearchFiles{Query: "ext:go"}},
	}
	for _, tt := range tests {
		got, ok := toAction(tt.evt)
		if !ok || got != tt.want {
			t.Errorf("%s: got %v (%v), want %v", tt.evt.Action, got, ok, tt.want)
		}
	}

	for _, a := range []ui.UIAction{ui.ActionNone, ui.ActionOpenExternal, ui.ActionToggleTheme} {
		if _, ok := toAction(ui.UIEvent{Action: a}); ok {
			t.Errorf("%s must not become a workspace action", a)
		}
	}
}

func TestPersistThemeLeavesInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	original := `{"ui":{"sidebarWidth":5000}}`
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewManager()
	if err := cfg.LoadFrom(path); err != nil {
		t.Fatal(err)
	}

	err := persistTheme(cfg, true)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if msg := themeSaveMessage(err); !strings.Contains(msg, "config.json") {
		t.Errorf("unexpected toast message %q", msg)
	}
	if data, _ := os.ReadFile(path); string(data) != original {
		t.Errorf("config file was rewritten: %s", data)
	}
}

func TestPersistThemeSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.NewManager()
	if err := cfg.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	if err := persistTheme(cfg, true); err != nil {
		t.Fatalf("persistTheme: %v", err)
	}
	reloaded := config.NewManager()
	if err := reloaded.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	if !reloaded.IsDarkMode() {
		t.Error("expected dark theme to persist")
	}
}
