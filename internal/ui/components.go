package ui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// layoutHorizontalSeparator draws a 1dp line across the available width.
func (r *Renderer) layoutHorizontalSeparator(gtx layout.Context, c color.NRGBA) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(1)))
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}

// layoutInputBox wraps an editor in a bordered box.
func (r *Renderer) layoutInputBox(gtx layout.Context, ed material.EditorStyle) layout.Dimensions {
	return widget.Border{
		Color:        colLightGray,
		Width:        unit.Dp(1),
		CornerRadius: unit.Dp(4),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			ed.Color = colText
			ed.HintColor = colGray
			return ed.Layout(gtx)
		})
	})
}

// layoutTab renders a sidebar tab header with an underline when active.
func (r *Renderer) layoutTab(gtx layout.Context, clk *widget.Clickable, text string, active bool) layout.Dimensions {
	return material.Clickable(gtx, clk, func(gtx layout.Context) layout.Dimensions {
		dims := layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, text)
				lbl.Color = colGray
				if active {
					lbl.Color = colText
					lbl.Font.Weight = 600
				}
				return lbl.Layout(gtx)
			})
		if active {
			h := gtx.Dp(unit.Dp(2))
			rect := image.Rect(0, dims.Size.Y-h, dims.Size.X, dims.Size.Y)
			paint.FillShape(gtx.Ops, colAccent, clip.Rect(rect).Op())
		}
		return dims
	})
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
