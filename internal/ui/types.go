package ui

import (
	"github.com/justyntemme/scribe/internal/workspace"
)

type UIAction int

const (
	ActionNone UIAction = iota
	ActionOpenFile
	ActionCloseFile
	ActionOpenFolder
	ActionSearch
	ActionOpenExternal
	ActionToggleTheme
)

func (a UIAction) String() string {
	switch a {
	case ActionOpenFile:
		return "OpenFile"
	case ActionCloseFile:
		return "CloseFile"
	case ActionOpenFolder:
		return "OpenFolder"
	case ActionSearch:
		return "Search"
	case ActionOpenExternal:
		return "OpenExternal"
	case ActionToggleTheme:
		return "ToggleTheme"
	default:
		return "None"
	}
}

// UIEvent is what a frame produced; at most one per frame.
type UIEvent struct {
	Action UIAction
	Path   string
	Query  string
}

// SidebarView selects what the sidebar lists.
type SidebarView int

const (
	ViewExplorer SidebarView = iota
	ViewSearch
)

// State is the snapshot the renderer draws from. The orchestrator refreshes
// it from the workspace store before each frame.
type State struct {
	Tree     workspace.FileTree
	Document *workspace.Document
	Results  []workspace.SearchHit
	Busy     bool

	ConfigError string
}

// Options configures a Renderer.
type Options struct {
	Dark         bool
	DirsFirst    bool
	SidebarWidth int // dp
	Monospace    bool
	TextSize     int // sp
	ToastSeconds int
}
