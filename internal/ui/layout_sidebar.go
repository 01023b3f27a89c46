package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/scribe/internal/workspace"
)

// Sidebar layout - explorer tree and file search

func (r *Renderer) layoutSidebar(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	if r.explorerTab.Clicked(gtx) {
		r.view = ViewExplorer
	}
	if r.searchTab.Clicked(gtx) {
		r.view = ViewSearch
	}

	paint.FillShape(gtx.Ops, colSidebar, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutTab(gtx, &r.explorerTab, "Explorer", r.view == ViewExplorer)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutTab(gtx, &r.searchTab, "Search", r.view == ViewSearch)
				}),
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutHorizontalSeparator(gtx, colLightGray)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			switch r.view {
			case ViewSearch:
				return r.layoutSearch(gtx, state, eventOut)
			default:
				return r.layoutExplorer(gtx, state, eventOut)
			}
		}),
	)
}

func (r *Renderer) layoutExplorer(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	if state.Tree.IsEmpty() {
		msg := "No folder open"
		if state.Tree.Root != "" {
			msg = "Folder is empty"
		}
		return r.layoutPlaceholder(gtx, msg)
	}

	rows := FlattenTree(state.Tree, r.expanded, r.dirsFirst)
	for _, row := range rows {
		if !r.clickable(row.Entry.Path).Clicked(gtx) {
			continue
		}
		if row.Entry.IsDir {
			r.expanded[row.Entry.Path] = !row.Expanded
			gtx.Execute(op.InvalidateCmd{})
			continue
		}
		*eventOut = UIEvent{Action: ActionOpenFile, Path: row.Entry.Path}
	}

	current := ""
	if state.Document != nil {
		current = state.Document.Path
	}
	return material.List(r.Theme, &r.treeList).Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
		row := rows[i]
		return r.layoutTreeRow(gtx, row, row.Entry.Path == current)
	})
}

func (r *Renderer) layoutTreeRow(gtx layout.Context, row Row, selected bool) layout.Dimensions {
	return material.Clickable(gtx, r.clickable(row.Entry.Path), func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				if selected {
					paint.FillShape(gtx.Ops, colSelected, clip.Rect{Max: gtx.Constraints.Min}.Op())
				}
				return layout.Dimensions{}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				indent := unit.Dp(12 + 14*row.Depth)
				return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: indent, Right: unit.Dp(8)}.Layout(gtx,
					func(gtx layout.Context) layout.Dimensions {
						lbl := material.Body2(r.Theme, rowLabel(row))
						lbl.Color = colText
						lbl.MaxLines = 1
						if row.Entry.IsDir {
							lbl.Color = colDirBlue
							lbl.Font.Weight = font.Bold
						}
						return lbl.Layout(gtx)
					})
			}),
		)
	})
}

func rowLabel(row Row) string {
	if !row.Entry.IsDir {
		return row.Entry.Name
	}
	if row.Expanded {
		return "▾ " + row.Entry.Name
	}
	return "▸ " + row.Entry.Name
}

func (r *Renderer) layoutSearch(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	for {
		evt, ok := r.searchEditor.Update(gtx)
		if !ok {
			break
		}
		if s, ok := evt.(widget.SubmitEvent); ok {
			*eventOut = UIEvent{Action: ActionSearch, Query: strings.TrimSpace(s.Text)}
		}
	}

	for _, hit := range state.Results {
		if !r.clickable(hit.Path).Clicked(gtx) {
			continue
		}
		if hit.IsDir {
			r.revealPath(hit.Path)
			r.view = ViewExplorer
			gtx.Execute(op.InvalidateCmd{})
			continue
		}
		*eventOut = UIEvent{Action: ActionOpenFile, Path: hit.Path}
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return r.layoutInputBox(gtx, material.Editor(r.Theme, &r.searchEditor, "name, ext:go, contents:todo"))
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if state.Results == nil {
				return layout.Dimensions{}
			}
			lbl := material.Caption(r.Theme, resultSummary(len(state.Results)))
			lbl.Color = colGray
			return layout.Inset{Left: unit.Dp(12), Bottom: unit.Dp(4)}.Layout(gtx, lbl.Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(r.Theme, &r.resultList).Layout(gtx, len(state.Results), func(gtx layout.Context, i int) layout.Dimensions {
				return r.layoutResultRow(gtx, state.Results[i])
			})
		}),
	)
}

func (r *Renderer) layoutResultRow(gtx layout.Context, hit workspace.SearchHit) layout.Dimensions {
	rel := hit.Path
	if r.treeRoot != "" {
		if p, err := filepath.Rel(r.treeRoot, hit.Path); err == nil {
			rel = p
		}
	}
	return material.Clickable(gtx, r.clickable(hit.Path), func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(12), Right: unit.Dp(8)}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := material.Body2(r.Theme, hit.Name)
						lbl.Color = colText
						if hit.IsDir {
							lbl.Color = colDirBlue
						}
						lbl.MaxLines = 1
						return lbl.Layout(gtx)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := material.Caption(r.Theme, rel)
						lbl.Color = colGray
						lbl.MaxLines = 1
						return lbl.Layout(gtx)
					}),
				)
			})
	})
}

func resultSummary(n int) string {
	switch n {
	case 0:
		return "No matches"
	case 1:
		return "1 match"
	default:
		return fmt.Sprintf("%d matches", n)
	}
}

func (r *Renderer) layoutPlaceholder(gtx layout.Context, msg string) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(r.Theme, msg)
		lbl.Color = colGray
		return lbl.Layout(gtx)
	})
}
