package ui

import "image/color"

// Theme colors - these are variables so they can be modified for dark mode
var (
	colBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colText       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colGray       = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colLightGray  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colDirBlue    = color.NRGBA{R: 0, G: 0, B: 128, A: 255}
	colSelected   = color.NRGBA{R: 200, G: 220, B: 255, A: 255}
	colSidebar    = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	colAccent     = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	colGutter     = color.NRGBA{R: 160, G: 160, B: 160, A: 255} // line numbers
	// Config error banner colors
	colErrorBannerBg   = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	colErrorBannerText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type palette struct {
	background, text, gray, lightGray, dirBlue, selected, sidebar, gutter color.NRGBA
}

var lightPalette = palette{
	background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	text:       color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	gray:       color.NRGBA{R: 100, G: 100, B: 100, A: 255},
	lightGray:  color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	dirBlue:    color.NRGBA{R: 0, G: 0, B: 128, A: 255},
	selected:   color.NRGBA{R: 200, G: 220, B: 255, A: 255},
	sidebar:    color.NRGBA{R: 245, G: 245, B: 245, A: 255},
	gutter:     color.NRGBA{R: 160, G: 160, B: 160, A: 255},
}

var darkPalette = palette{
	background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	text:       color.NRGBA{R: 220, G: 220, B: 220, A: 255},
	gray:       color.NRGBA{R: 150, G: 150, B: 150, A: 255},
	lightGray:  color.NRGBA{R: 70, G: 70, B: 70, A: 255},
	dirBlue:    color.NRGBA{R: 130, G: 170, B: 255, A: 255},
	selected:   color.NRGBA{R: 45, G: 65, B: 100, A: 255},
	sidebar:    color.NRGBA{R: 40, G: 40, B: 40, A: 255},
	gutter:     color.NRGBA{R: 110, G: 110, B: 110, A: 255},
}

// applyTheme swaps the package colors and the material palette.
func (r *Renderer) applyTheme() {
	p := lightPalette
	if r.DarkMode {
		p = darkPalette
	}
	colBackground, colText, colGray, colLightGray = p.background, p.text, p.gray, p.lightGray
	colDirBlue, colSelected, colSidebar, colGutter = p.dirBlue, p.selected, p.sidebar, p.gutter

	r.Theme.Palette.Bg = colBackground
	r.Theme.Palette.Fg = colText
	r.Theme.Palette.ContrastBg = colAccent
}
