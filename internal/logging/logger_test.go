package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestNewLoggerIsSingletonPerComponent(t *testing.T) {
	a := NewLogger("loop")
	b := NewLogger("loop")
	if a != b {
		t.Error("expected the same logger for the same component")
	}
	if NewLogger("fs") == a {
		t.Error("expected distinct loggers for distinct components")
	}
}

func TestLoggerWritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	NewLogger("scanner").Warn("scan failed")

	out := buf.String()
	if !strings.Contains(out, "component=scanner") {
		t.Errorf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "scan failed") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	t.Setenv("SCRIBE_LOG_LEVEL", "")
	if err := SetLevel("bogus"); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := SetLevel(""); err != nil {
		t.Errorf("empty level should be ignored, got %v", err)
	}
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug): %v", err)
	}
	if Base().GetLevel().String() != "debug" {
		t.Errorf("expected debug level, got %s", Base().GetLevel())
	}
	SetLevel("info")
}
