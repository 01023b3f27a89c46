package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/fs"
	"github.com/justyntemme/scribe/internal/logging"
	"github.com/justyntemme/scribe/internal/workspace"
)

// Phase is the event loop's state.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseIdle
	PhaseProcessing
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseIdle:
		return "Idle"
	case PhaseProcessing:
		return "Processing"
	}
	return "Unknown"
}

// LoopOptions carries the settings the loop applies to each action.
type LoopOptions struct {
	Root          string // scanned at startup when non-empty
	MaxFileSize   int64  // 0 = unlimited
	MaxResults    int    // finder hit limit, 0 = unlimited
	IncludeHidden bool   // finder includes dot entries
	Exclude       []string
}

// Loop is the single consumer of the action queue and the only writer of
// the workspace store. Actions are processed one at a time in queue order;
// blocking I/O is handed to the fs worker and awaited.
type Loop struct {
	store *workspace.Store
	queue *Queue
	fs    *fs.System
	opts  LoopOptions
	phase *workspace.Cell[Phase]
	root  string
	log   *logrus.Entry
}

func NewLoop(store *workspace.Store, queue *Queue, sys *fs.System, opts LoopOptions) *Loop {
	return &Loop{
		store: store,
		queue: queue,
		fs:    sys,
		opts:  opts,
		phase: workspace.NewCell(PhaseInitializing),
		log:   logging.NewLogger("loop"),
	}
}

// Phase returns the loop's current state.
func (l *Loop) Phase() Phase {
	return l.phase.Get()
}

// OnPhase runs fn on every phase change.
func (l *Loop) OnPhase(fn func(Phase)) (cancel func()) {
	return l.phase.Subscribe(fn)
}

// Run performs the startup scan and then processes actions forever.
// There is no cancellation: Run returns only when the process exits.
func (l *Loop) Run() {
	l.initialize()
	for {
		a := l.queue.Pop()
		l.phase.Set(PhaseProcessing)
		debug.Log(debug.LOOP, "dispatch %s (queued=%d)", a, l.queue.Len())
		l.dispatch(a)
		l.phase.Set(PhaseIdle)
	}
}

func (l *Loop) initialize() {
	if l.opts.Root != "" {
		l.loadFolder(l.opts.Root)
	}
	l.phase.Set(PhaseIdle)
}

func (l *Loop) dispatch(a workspace.Action) {
	switch a := a.(type) {
	case workspace.OpenFile:
		l.openFile(a.Path)
	case workspace.CloseFile:
		l.store.Document.Set(nil)
	case workspace.OpenFolder:
		l.loadFolder(a.Path)
	case workspace.SearchFiles:
		l.searchFiles(a.Query)
	default:
		l.log.Warnf("unhandled action %s", a)
	}
}

func (l *Loop) openFile(path string) {
	resp := l.fs.Do(fs.Request{Op: fs.ReadFile, Path: path, MaxSize: l.opts.MaxFileSize})
	if resp.Err != nil {
		l.report(workspace.NoticeError, fmt.Sprintf("Cannot open %s", filepath.Base(path)), resp.Err)
		return
	}
	l.store.Document.Set(&workspace.Document{Path: path, Content: resp.Content})
}

// loadFolder replaces the tree with a scan of root. On failure the previous
// tree is kept.
func (l *Loop) loadFolder(root string) {
	resp := l.fs.Do(fs.Request{Op: fs.ScanTree, Path: root})
	if resp.Err != nil {
		l.report(workspace.NoticeError, fmt.Sprintf("Cannot load folder %s", root), resp.Err)
		return
	}
	l.root = root
	l.store.Tree.Set(resp.Tree)
	if l.store.Results.Get() != nil {
		l.store.Results.Set(nil)
	}
}

func (l *Loop) searchFiles(query string) {
	if l.root == "" {
		l.report(workspace.NoticeWarning, "Open a folder before searching", nil)
		return
	}

	resp := l.fs.Do(fs.Request{
		Op:            fs.FindFiles,
		Path:          l.root,
		Query:         query,
		MaxResults:    l.opts.MaxResults,
		IncludeHidden: l.opts.IncludeHidden,
		Exclude:       l.opts.Exclude,
	})
	if resp.Err != nil {
		l.report(workspace.NoticeError, fmt.Sprintf("Search for %q failed", query), resp.Err)
		return
	}
	l.store.Results.Set(resp.Hits)
	if resp.Truncated {
		l.report(workspace.NoticeInfo, fmt.Sprintf("Showing the first %d results", len(resp.Hits)), nil)
	}
}

// report sends a failure to the user-visible feed and the diagnostic log.
func (l *Loop) report(kind workspace.NoticeKind, msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, describe(err))
	}
	entry := l.log
	if err != nil {
		entry = entry.WithError(err)
	}
	switch kind {
	case workspace.NoticeError:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}
	l.store.Notices.Publish(workspace.Notice{Kind: kind, Message: msg, Err: err})
}

// describe turns a typed fs error into a short user-facing reason.
func describe(err error) string {
	var scanErr *fs.ScanError
	if errors.As(err, &scanErr) {
		return scanErr.Kind.String()
	}
	var readErr *fs.ReadError
	if errors.As(err, &readErr) {
		return readErr.Kind.String()
	}
	return err.Error()
}
