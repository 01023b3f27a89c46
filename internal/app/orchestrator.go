package app

import (
	"errors"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/sirupsen/logrus"

	"github.com/justyntemme/scribe/internal/config"
	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/fs"
	"github.com/justyntemme/scribe/internal/logging"
	"github.com/justyntemme/scribe/internal/recents"
	"github.com/justyntemme/scribe/internal/ui"
	"github.com/justyntemme/scribe/internal/workspace"
)

// Options configures an editor session.
type Options struct {
	Root      string // folder to open; empty falls back to the last root
	NoRestore bool   // ignore the last root even when config allows it
	Config    *config.Manager
	DBPath    string // recents database, empty = recents.DefaultPath()
}

// Orchestrator wires the window to the workspace engine. It never writes
// the store: user intent becomes actions on the queue, and store changes
// become redraws.
type Orchestrator struct {
	window  *app.Window
	store   *workspace.Store
	queue   *Queue
	fs      *fs.System
	recents *recents.DB
	ui      *ui.Renderer
	cfg     *config.Manager
	opts    Options
	log     *logrus.Entry
}

func NewOrchestrator(opts Options) *Orchestrator {
	if opts.Config == nil {
		opts.Config = config.NewManager()
	}
	c := opts.Config.Get()
	r := ui.NewRenderer(ui.Options{
		Dark:         c.UI.Theme == "dark",
		DirsFirst:    c.UI.DirsFirst,
		SidebarWidth: c.UI.SidebarWidth,
		Monospace:    c.Editor.Monospace,
		TextSize:     c.Editor.TextSize,
		ToastSeconds: c.UI.ToastSeconds,
	})
	db := recents.NewDB()
	db.Keep = c.Workspace.HistoryLimit
	return &Orchestrator{
		window:  new(app.Window),
		store:   workspace.NewStore(),
		queue:   NewQueue(),
		fs:      fs.NewSystem(),
		recents: db,
		ui:      r,
		cfg:     opts.Config,
		opts:    opts,
		log:     logging.NewLogger("app"),
	}
}

func (o *Orchestrator) Run() error {
	c := o.cfg.Get()

	dbPath := o.opts.DBPath
	if dbPath == "" {
		dbPath = recents.DefaultPath()
	}
	history := true
	if err := o.recents.Open(dbPath); err != nil {
		o.log.WithError(err).Warn("recent files disabled")
		history = false
	}
	defer o.recents.Close()

	restore := c.Workspace.RestoreLastRoot && !o.opts.NoRestore
	var lastRoot func() (string, bool, error)
	if history {
		lastRoot = func() (string, bool, error) { return o.recents.Setting(recents.SettingLastRoot) }
	}
	root := resolveRoot(o.opts.Root, restore, lastRoot)
	debug.Log(debug.APP, "starting with root %q", root)

	loop := NewLoop(o.store, o.queue, o.fs, LoopOptions{
		Root:          root,
		MaxFileSize:   c.Editor.MaxFileSize,
		MaxResults:    c.Search.MaxResults,
		IncludeHidden: c.Search.IncludeHidden,
		Exclude:       c.Search.Exclude,
	})

	// Subscribe before the loop starts so no publish is missed.
	o.store.OnChange(o.window.Invalidate)
	o.store.Notices.Subscribe(o.ui.ShowNotice)
	loop.OnPhase(func(Phase) { o.window.Invalidate() })
	if history {
		TrackHistory(o.store, o.recents)
		go o.recents.Start()
	}
	if err := o.cfg.ParseError(); err != nil {
		o.ui.ShowToast("Config error, using defaults", ui.ToastWarning)
	}

	go o.fs.Start()
	go loop.Run()

	o.window.Option(app.Title("Scribe"), app.Size(unit.Dp(1100), unit.Dp(720)))

	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			state := o.snapshot(loop.Phase())
			evt := o.ui.Layout(gtx, &state)
			o.handleUIEvent(evt)
			e.Frame(gtx.Ops)
		}
	}
}

func (o *Orchestrator) snapshot(phase Phase) ui.State {
	snap := o.store.Snapshot()
	state := ui.State{
		Tree:     snap.Tree,
		Document: snap.Document,
		Results:  snap.Results,
		Busy:     phase != PhaseIdle,
	}
	if err := o.cfg.ParseError(); err != nil {
		state.ConfigError = err.Error()
	}
	return state
}

// handleUIEvent turns a frame's intent into a queued action. Purely visual
// intents are applied here without touching the store.
func (o *Orchestrator) handleUIEvent(evt ui.UIEvent) {
	if a, ok := toAction(evt); ok {
		o.queue.Push(a)
		return
	}
	switch evt.Action {
	case ui.ActionOpenExternal:
		if err := platformOpen(evt.Path); err != nil {
			o.log.WithError(err).Warnf("open %s externally", evt.Path)
			o.ui.ShowToast("Cannot open "+filepath.Base(evt.Path)+" externally", ui.ToastError)
		}
	case ui.ActionToggleTheme:
		if err := persistTheme(o.cfg, o.ui.DarkMode); err != nil {
			o.log.WithError(err).Warn("save theme")
			o.ui.ShowToast(themeSaveMessage(err), ui.ToastWarning)
		}
	}
}

func persistTheme(cfg *config.Manager, dark bool) error {
	theme := "light"
	if dark {
		theme = "dark"
	}
	return cfg.SetTheme(theme)
}

func themeSaveMessage(err error) string {
	if errors.Is(err, config.ErrInvalidConfig) {
		return "Theme not saved: fix the errors in config.json first"
	}
	return "Theme not saved"
}

// toAction maps UI events that change the workspace onto queue actions.
func toAction(evt ui.UIEvent) (workspace.Action, bool) {
	switch evt.Action {
	case ui.ActionOpenFile:
		return workspace.OpenFile{Path: evt.Path}, true
	case ui.ActionCloseFile:
		return workspace.CloseFile{}, true
	case ui.ActionOpenFolder:
		return workspace.OpenFolder{Path: absPath(evt.Path)}, true
	case ui.ActionSearch:
		return workspace.SearchFiles{Query: evt.Query}, true
	}
	return nil, false
}

// resolveRoot picks the startup folder: an explicit argument wins, then the
// last root when restoring is enabled. Lookup failures fall back to no root.
func resolveRoot(arg string, restore bool, lastRoot func() (string, bool, error)) string {
	if arg != "" {
		return absPath(arg)
	}
	if !restore || lastRoot == nil {
		return ""
	}
	root, ok, err := lastRoot()
	if err != nil || !ok {
		return ""
	}
	return root
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Main runs the editor until the window closes.
func Main(opts Options) {
	go func() {
		o := NewOrchestrator(opts)
		if err := o.Run(); err != nil {
			o.log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
