package ui

import (
	"image"
	"path/filepath"
	"strings"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/workspace"
)

type Renderer struct {
	Theme    *material.Theme
	DarkMode bool

	dirsFirst     bool
	sidebarWidth  unit.Dp
	monospace     bool
	textSize      unit.Sp
	toastDuration time.Duration
	toast         Toast

	view        SidebarView
	explorerTab widget.Clickable
	searchTab   widget.Clickable
	treeList    widget.List
	resultList  widget.List
	docList     widget.List

	// Per-path row state, rebuilt when the root changes.
	rowClicks map[string]*widget.Clickable
	expanded  map[string]bool
	treeRoot  string

	folderEditor widget.Editor
	searchEditor widget.Editor
	themeBtn     widget.Clickable
	closeBtn     widget.Clickable
	externalBtn  widget.Clickable

	docLines []string
	docFor   *workspace.Document
}

func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		Theme:         material.NewTheme(),
		DarkMode:      opts.Dark,
		dirsFirst:     opts.DirsFirst,
		sidebarWidth:  unit.Dp(opts.SidebarWidth),
		monospace:     opts.Monospace,
		textSize:      unit.Sp(opts.TextSize),
		toastDuration: time.Duration(opts.ToastSeconds) * time.Second,
		rowClicks:     make(map[string]*widget.Clickable),
		expanded:      make(map[string]bool),
	}
	if r.sidebarWidth <= 0 {
		r.sidebarWidth = 260
	}
	if r.textSize <= 0 {
		r.textSize = 14
	}
	if r.toastDuration <= 0 {
		r.toastDuration = 4 * time.Second
	}
	r.treeList.Axis = layout.Vertical
	r.resultList.Axis = layout.Vertical
	r.docList.Axis = layout.Vertical

	r.folderEditor.SingleLine = true
	r.folderEditor.Submit = true
	r.searchEditor.SingleLine = true
	r.searchEditor.Submit = true

	r.applyTheme()
	return r
}

// SetDarkMode switches between the light and dark palettes.
func (r *Renderer) SetDarkMode(dark bool) {
	r.DarkMode = dark
	r.applyTheme()
}

// View reports which list the sidebar is showing.
func (r *Renderer) View() SidebarView { return r.view }

// Layout draws one frame and returns the user's intent, if any.
func (r *Renderer) Layout(gtx layout.Context, state *State) UIEvent {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, colBackground, clip.Rect{Max: gtx.Constraints.Max}.Op())

	r.syncTree(state.Tree)
	r.syncDocument(state.Document)

	var eventOut UIEvent
	layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Max
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutConfigBanner(gtx, state.ConfigError)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutToolbar(gtx, state, &eventOut)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutHorizontalSeparator(gtx, colLightGray)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							width := gtx.Dp(r.sidebarWidth)
							gtx.Constraints = layout.Exact(image.Pt(width, gtx.Constraints.Max.Y))
							return r.layoutSidebar(gtx, state, &eventOut)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							width := gtx.Dp(unit.Dp(1))
							paint.FillShape(gtx.Ops, colLightGray, clip.Rect{Max: image.Pt(width, gtx.Constraints.Max.Y)}.Op())
							return layout.Dimensions{Size: image.Pt(width, gtx.Constraints.Max.Y)}
						}),
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return r.layoutDocument(gtx, state.Document, &eventOut)
						}),
					)
				}),
			)
		}),
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return r.layoutToast(gtx, r.Theme)
		}),
	)

	if eventOut.Action != ActionNone {
		debug.Log(debug.UI, "event %s path=%q query=%q", eventOut.Action, eventOut.Path, eventOut.Query)
	}
	return eventOut
}

// syncTree resets per-path state when a different root is shown.
func (r *Renderer) syncTree(tree workspace.FileTree) {
	if tree.Root == r.treeRoot {
		return
	}
	r.treeRoot = tree.Root
	r.rowClicks = make(map[string]*widget.Clickable)
	r.expanded = make(map[string]bool)
	r.folderEditor.SetText(tree.Root)
}

func (r *Renderer) syncDocument(doc *workspace.Document) {
	if doc == r.docFor {
		return
	}
	r.docFor = doc
	r.docLines = nil
	if doc != nil {
		r.docLines = splitLines(doc.Content)
	}
	r.docList.Position = layout.Position{}
}

func (r *Renderer) clickable(path string) *widget.Clickable {
	c, ok := r.rowClicks[path]
	if !ok {
		c = new(widget.Clickable)
		r.rowClicks[path] = c
	}
	return c
}

// revealPath expands every directory on the way to path.
func (r *Renderer) revealPath(path string) {
	if r.treeRoot == "" {
		return
	}
	for dir := path; dir != r.treeRoot; {
		r.expanded[dir] = true
		parent := filepath.Dir(dir)
		if parent == dir || !strings.HasPrefix(parent, r.treeRoot) {
			return
		}
		dir = parent
	}
}

func (r *Renderer) layoutToolbar(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	for {
		evt, ok := r.folderEditor.Update(gtx)
		if !ok {
			break
		}
		if s, ok := evt.(widget.SubmitEvent); ok {
			if path := strings.TrimSpace(s.Text); path != "" {
				*eventOut = UIEvent{Action: ActionOpenFolder, Path: path}
			}
		}
	}
	if r.themeBtn.Clicked(gtx) {
		r.SetDarkMode(!r.DarkMode)
		*eventOut = UIEvent{Action: ActionToggleTheme}
	}

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, "Folder")
				lbl.Color = colGray
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return r.layoutInputBox(gtx, material.Editor(r.Theme, &r.folderEditor, "Path to a folder"))
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !state.Busy {
					return layout.Dimensions{}
				}
				lbl := material.Caption(r.Theme, "Working")
				lbl.Color = colGray
				return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, lbl.Layout)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := "Dark"
				if r.DarkMode {
					label = "Light"
				}
				btn := material.Button(r.Theme, &r.themeBtn, label)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				return btn.Layout(gtx)
			}),
		)
	})
}

func (r *Renderer) layoutConfigBanner(gtx layout.Context, msg string) layout.Dimensions {
	if msg == "" {
		return layout.Dimensions{}
	}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, colErrorBannerBg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, "Config error, using defaults: "+msg)
				lbl.Color = colErrorBannerText
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			})
		}),
	)
}
