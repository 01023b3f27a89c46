package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/justyntemme/scribe/internal/app"
	"github.com/justyntemme/scribe/internal/recents"
)

// resetFlags restores global flag state between Execute calls.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, dbPath = "", ""
		debugMode, noRestore = false, false
		recentLimit, recentJSON = 20, false
		launch = app.Main
		for _, name := range []string{"help", "version"} {
			if f := rootCmd.Flags().Lookup(name); f != nil {
				_ = f.Value.Set("false")
			}
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var buf bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "scribe") {
		t.Errorf("expected help to mention scribe, got %q", out)
	}
}

func TestRootCommand_LaunchesWithOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.json")
	db := filepath.Join(dir, "scribe.db")

	var got app.Options
	calls := 0
	resetFlags(t)
	launch = func(opts app.Options) {
		calls++
		got = opts
	}

	rootCmd.SetArgs([]string{"--config", cfg, "--db", db, "--no-restore", "/tmp/project"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected one launch, got %d", calls)
	}
	if got.Root != "/tmp/project" || !got.NoRestore || got.DBPath != db {
		t.Errorf("unexpected options: %+v", got)
	}
	if got.Config == nil || got.Config.Path() != cfg {
		t.Error("expected config loaded from --config")
	}
	if _, err := os.Stat(cfg); err != nil {
		t.Errorf("expected default config written: %v", err)
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	resetFlags(t)
	launch = func(app.Options) { t.Error("must not launch") }
	rootCmd.SetArgs([]string{"a", "b"})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for two folders")
	}
}

func TestConfigPathCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "c.json")
	out, err := execute(t, "config", "path", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != cfg {
		t.Errorf("expected %q, got %q", cfg, out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfg, []byte(`{"ui":{"theme":"dark"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "init", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "backed up to") || !strings.Contains(out, cfg) {
		t.Errorf("unexpected output %q", out)
	}
	data, _ := os.ReadFile(cfg)
	if strings.Contains(string(data), `"theme": "dark"`) {
		t.Error("expected config to be regenerated")
	}
}

func TestRecentCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scribe.db")
	store := recents.NewDB()
	if err := store.Open(db); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"/w/a.txt", "/w/b.txt", "/w/c.txt"} {
		if err := store.RecordOpen(p); err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	store.Close()

	out, err := execute(t, "recent", "--db", db, "-n", "2", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var entries []recents.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Path != "/w/c.txt" {
		t.Errorf("expected most recent first, got %s", entries[0].Path)
	}
}

func TestRecentCommand_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scribe.db")
	out, err := execute(t, "recent", "--db", db)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "No recent files") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSetVersion(t *testing.T) {
	old := rootCmd.Version
	defer func() { rootCmd.Version = old }()

	SetVersion("")
	if rootCmd.Version != old {
		t.Error("empty version must not override")
	}
	SetVersion("1.2.3")
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("expected version in output, got %q", out)
	}
}

func TestConfigSchemaCommand(t *testing.T) {
	out, err := execute(t, "config", "schema")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if _, ok := doc["properties"]; !ok {
		t.Error("expected schema properties")
	}
}
