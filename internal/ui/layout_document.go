package ui

import (
	"fmt"
	"path/filepath"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/justyntemme/scribe/internal/workspace"
)

// layoutDocument renders the open document as a read-only line list.
func (r *Renderer) layoutDocument(gtx layout.Context, doc *workspace.Document, eventOut *UIEvent) layout.Dimensions {
	if doc == nil {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body1(r.Theme, "Open a file from the explorer")
			lbl.Color = colGray
			return lbl.Layout(gtx)
		})
	}

	if r.closeBtn.Clicked(gtx) {
		*eventOut = UIEvent{Action: ActionCloseFile}
	}
	if r.externalBtn.Clicked(gtx) {
		*eventOut = UIEvent{Action: ActionOpenExternal, Path: doc.Path}
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutDocumentHeader(gtx, doc)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return r.layoutHorizontalSeparator(gtx, colLightGray)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12), Bottom: unit.Dp(8)}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					return r.layoutLines(gtx)
				})
		}),
	)
}

func (r *Renderer) layoutDocumentHeader(gtx layout.Context, doc *workspace.Document) layout.Dimensions {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := material.Body1(r.Theme, filepath.Base(doc.Path))
						lbl.Color = colText
						lbl.Font.Weight = 600
						lbl.MaxLines = 1
						return lbl.Layout(gtx)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						info := fmt.Sprintf("%s · %d lines · %s", doc.Path, len(r.docLines), formatSize(int64(len(doc.Content))))
						lbl := material.Caption(r.Theme, info)
						lbl.Color = colGray
						lbl.MaxLines = 1
						return lbl.Layout(gtx)
					}),
				)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := material.Button(r.Theme, &r.externalBtn, "Open externally")
				btn.Inset = layout.UniformInset(unit.Dp(6))
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := material.Button(r.Theme, &r.closeBtn, "Close")
				btn.Inset = layout.UniformInset(unit.Dp(6))
				return btn.Layout(gtx)
			}),
		)
	})
}

func (r *Renderer) layoutLines(gtx layout.Context) layout.Dimensions {
	gutter := len(fmt.Sprint(len(r.docLines)))
	return material.List(r.Theme, &r.docList).Layout(gtx, len(r.docLines), func(gtx layout.Context, i int) layout.Dimensions {
		line := r.docLines[i]
		if line == "" {
			line = " " // Preserve empty lines
		}
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, fmt.Sprintf("%*d", gutter, i+1))
				lbl.Font.Typeface = "monospace"
				lbl.TextSize = r.textSize
				lbl.Color = colGutter
				return layout.Inset{Right: unit.Dp(12)}.Layout(gtx, lbl.Layout)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, line)
				if r.monospace {
					lbl.Font.Typeface = "monospace"
				}
				lbl.TextSize = r.textSize
				lbl.Color = colText
				return lbl.Layout(gtx)
			}),
		)
	})
}
