package ui

import (
	"image"
	"image/color"
	"sync"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/justyntemme/scribe/internal/workspace"
)

// ToastType indicates the severity/type of toast message
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
)

// Toast represents a temporary notification message
type Toast struct {
	Message   string
	Type      ToastType
	Visible   bool
	ExpiresAt time.Time
	mu        sync.Mutex
}

// ShowToast displays a toast notification that auto-dismisses.
// Safe to call from any goroutine.
func (r *Renderer) ShowToast(message string, toastType ToastType) {
	r.toast.mu.Lock()
	defer r.toast.mu.Unlock()

	r.toast.Message = message
	r.toast.Type = toastType
	r.toast.Visible = true
	r.toast.ExpiresAt = time.Now().Add(r.toastDuration)
}

// ShowNotice displays a workspace notice as a toast.
func (r *Renderer) ShowNotice(n workspace.Notice) {
	r.ShowToast(n.Message, toastTypeFor(n.Kind))
}

func toastTypeFor(kind workspace.NoticeKind) ToastType {
	switch kind {
	case workspace.NoticeError:
		return ToastError
	case workspace.NoticeWarning:
		return ToastWarning
	default:
		return ToastInfo
	}
}

// updateToast checks if the toast should be hidden
func (r *Renderer) updateToast() {
	r.toast.mu.Lock()
	defer r.toast.mu.Unlock()

	if r.toast.Visible && time.Now().After(r.toast.ExpiresAt) {
		r.toast.Visible = false
	}
}

// layoutToast renders the toast notification at the bottom of the screen
func (r *Renderer) layoutToast(gtx layout.Context, th *material.Theme) layout.Dimensions {
	r.updateToast()

	r.toast.mu.Lock()
	visible := r.toast.Visible
	message := r.toast.Message
	toastType := r.toast.Type
	expiresAt := r.toast.ExpiresAt
	r.toast.mu.Unlock()

	if !visible || message == "" {
		return layout.Dimensions{}
	}

	// Schedule redraw when toast should expire
	if time.Until(expiresAt) > 0 {
		gtx.Execute(op.InvalidateCmd{At: expiresAt})
	}

	bgColor, textColor := toastColors(toastType)

	return layout.S.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Bottom: unit.Dp(20),
			Left:   unit.Dp(20),
			Right:  unit.Dp(20),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(500)))

				rr := gtx.Dp(unit.Dp(8))

				// Measure text first
				macro := op.Record(gtx.Ops)
				textDims := layout.Inset{
					Top:    unit.Dp(12),
					Bottom: unit.Dp(12),
					Left:   unit.Dp(16),
					Right:  unit.Dp(16),
				}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Body1(th, message)
					label.Color = textColor
					return label.Layout(gtx)
				})
				call := macro.Stop()

				rect := image.Rect(0, 0, textDims.Size.X, textDims.Size.Y)
				paint.FillShape(gtx.Ops, bgColor, clip.RRect{
					Rect: rect,
					NE:   rr, NW: rr, SE: rr, SW: rr,
				}.Op(gtx.Ops))

				call.Add(gtx.Ops)
				return textDims
			})
		})
	})
}

func toastColors(t ToastType) (bg, fg color.NRGBA) {
	switch t {
	case ToastError:
		return color.NRGBA{R: 200, G: 50, B: 50, A: 240}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case ToastWarning:
		return color.NRGBA{R: 220, G: 160, B: 40, A: 240}, color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	default:
		return color.NRGBA{R: 60, G: 60, B: 60, A: 240}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
}
