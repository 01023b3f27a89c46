// Package fs performs the editor's blocking filesystem work: directory
// scans, document reads and finder walks. System runs that work on its own
// goroutine so the event loop is never blocked by disk latency.
package fs

import (
	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/search"
	"github.com/justyntemme/scribe/internal/workspace"
)

type OpType int

const (
	ScanTree OpType = iota
	ReadFile
	FindFiles
)

func (op OpType) String() string {
	switch op {
	case ScanTree:
		return "ScanTree"
	case ReadFile:
		return "ReadFile"
	case FindFiles:
		return "FindFiles"
	}
	return "Unknown"
}

type Request struct {
	Op            OpType
	Path          string
	Query         string
	MaxSize       int64    // ReadFile: byte limit, 0 = unlimited
	MaxResults    int      // FindFiles: hit limit, 0 = unlimited
	IncludeHidden bool     // FindFiles: include dot entries
	Exclude       []string // FindFiles: ignore patterns
}

type Response struct {
	Op        OpType
	Path      string
	Tree      workspace.FileTree
	Content   string
	Hits      []workspace.SearchHit
	Truncated bool
	Err       error
}

// System is a single worker goroutine. It serves one client: every Request
// is answered by exactly one Response, in order.
type System struct {
	RequestChan  chan Request
	ResponseChan chan Response

	// Swappable for tests that need to control latency or failures.
	ScanFunc func(root string) (workspace.FileTree, error)
	ReadFunc func(path string, maxSize int64) (string, error)
	FindFunc func(root string, q *search.Query, opts FindOptions) ([]workspace.SearchHit, bool, error)
}

func NewSystem() *System {
	return &System{
		RequestChan:  make(chan Request),
		ResponseChan: make(chan Response),
		ScanFunc:     Scan,
		ReadFunc:     ReadText,
		FindFunc:     Find,
	}
}

// Start serves requests until RequestChan is closed.
func (s *System) Start() {
	for req := range s.RequestChan {
		debug.Log(debug.FS, "Request: op=%s path=%q", req.Op, req.Path)
		resp := s.handle(req)
		debug.Log(debug.FS, "Response: op=%s path=%q err=%v", resp.Op, resp.Path, resp.Err)
		s.ResponseChan <- resp
	}
}

// Do sends req to the worker and waits for its response. The calling
// goroutine suspends here, not the worker.
func (s *System) Do(req Request) Response {
	s.RequestChan <- req
	return <-s.ResponseChan
}

func (s *System) handle(req Request) Response {
	resp := Response{Op: req.Op, Path: req.Path}
	switch req.Op {
	case ScanTree:
		resp.Tree, resp.Err = s.ScanFunc(req.Path)
	case ReadFile:
		resp.Content, resp.Err = s.ReadFunc(req.Path, req.MaxSize)
	case FindFiles:
		opts := FindOptions{MaxResults: req.MaxResults, IncludeHidden: req.IncludeHidden, Exclude: req.Exclude}
		resp.Hits, resp.Truncated, resp.Err = s.FindFunc(req.Path, search.Parse(req.Query), opts)
	}
	return resp
}
