package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/justyntemme/scribe/internal/search"
	"github.com/justyntemme/scribe/internal/workspace"
)

func TestNewSystem(t *testing.T) {
	s := NewSystem()
	if s == nil {
		t.Fatal("NewSystem returned nil")
	}
	if s.RequestChan == nil {
		t.Error("RequestChan is nil")
	}
	if s.ResponseChan == nil {
		t.Error("ResponseChan is nil")
	}
	if s.ScanFunc == nil || s.ReadFunc == nil || s.FindFunc == nil {
		t.Error("expected default I/O functions")
	}
}

func TestSystem_Start_ScanTree(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "b.txt", "a/x.txt")

	s := NewSystem()
	go s.Start()
	defer close(s.RequestChan)

	s.RequestChan <- Request{Op: ScanTree, Path: tmpDir}

	select {
	case resp := <-s.ResponseChan:
		if resp.Err != nil {
			t.Fatalf("unexpected error: %v", resp.Err)
		}
		if resp.Op != ScanTree {
			t.Errorf("expected Op=ScanTree, got %s", resp.Op)
		}
		if resp.Path != tmpDir {
			t.Errorf("expected Path=%q, got %q", tmpDir, resp.Path)
		}
		if resp.Tree.Count() != 3 {
			t.Errorf("expected 3 entries, got %d", resp.Tree.Count())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for response")
	}
}

func TestSystem_Do_ReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewSystem()
	go s.Start()
	defer close(s.RequestChan)

	resp := s.Do(Request{Op: ReadFile, Path: path})
	if resp.Err != nil {
		t.Fatalf("unexpected error: %v", resp.Err)
	}
	if resp.Content != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", resp.Content)
	}

	resp = s.Do(Request{Op: ReadFile, Path: path, MaxSize: 4})
	var readErr *ReadError
	if !errors.As(resp.Err, &readErr) || readErr.Kind != ReadTooLarge {
		t.Errorf("expected ReadTooLarge, got %v", resp.Err)
	}
}

func TestSystem_Do_FindFiles(t *testing.T) {
	s := NewSystem()
	var gotRoot string
	var gotOpts FindOptions
	s.FindFunc = func(root string, q *search.Query, opts FindOptions) ([]workspace.SearchHit, bool, error) {
		gotRoot, gotOpts = root, opts
		return []workspace.SearchHit{{Name: q.Raw}}, true, nil
	}
	go s.Start()
	defer close(s.RequestChan)

	resp := s.Do(Request{Op: FindFiles, Path: "/w", Query: "main", MaxResults: 7, IncludeHidden: true})
	if resp.Err != nil {
		t.Fatalf("unexpected error: %v", resp.Err)
	}
	if gotRoot != "/w" || gotOpts.MaxResults != 7 || !gotOpts.IncludeHidden {
		t.Errorf("unexpected finder arguments: root=%q opts=%+v", gotRoot, gotOpts)
	}
	if len(resp.Hits) != 1 || resp.Hits[0].Name != "main" || !resp.Truncated {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestSystem_RespondsInOrder(t *testing.T) {
	s := NewSystem()
	s.ReadFunc = func(path string, _ int64) (string, error) {
		if path == "slow" {
			time.Sleep(20 * time.Millisecond)
		}
		return path, nil
	}
	go s.Start()
	defer close(s.RequestChan)

	for _, p := range []string{"slow", "fast", "slow", "fast"} {
		resp := s.Do(Request{Op: ReadFile, Path: p})
		if resp.Content != p {
			t.Errorf("expected response for %q, got %q", p, resp.Content)
		}
	}
}

func TestOpType_String(t *testing.T) {
	testCases := []struct {
		op       OpType
		expected string
	}{
		{ScanTree, "ScanTree"},
		{ReadFile, "ReadFile"},
		{FindFiles, "FindFiles"},
		{OpType(99), "Unknown"},
	}
	for _, tc := range testCases {
		if tc.op.String() != tc.expected {
			t.Errorf("expected %q, got %q", tc.expected, tc.op.String())
		}
	}
}

func BenchmarkScan(b *testing.B) {
	tmpDir := b.TempDir()
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			name := filepath.Join(tmpDir, "dir"+string(rune('0'+i)), "file"+string(rune('0'+j))+".txt")
			os.MkdirAll(filepath.Dir(name), 0o755)
			os.WriteFile(name, []byte("content"), 0o644)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Scan(tmpDir); err != nil {
			b.Fatal(err)
		}
	}
}
