// bars.go - Bar panel framebuffer rendering

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "image/color"

const (
	PANEL_WIDTH  = 640
	PANEL_HEIGHT = 440
)

// barPalette maps the mark vocabulary to RGBA for framebuffer backends.
var barPalette = [...]color.RGBA{
	COLOR_NEUTRAL:  {0xE8, 0xE8, 0xE8, 0xFF},
	COLOR_COMPARE:  {0xE0, 0x30, 0x30, 0xFF},
	COLOR_TRACK:    {0x30, 0xB0, 0xE0, 0xFF},
	COLOR_PIVOT:    {0xE0, 0xC0, 0x20, 0xFF},
	COLOR_VERIFIED: {0x30, 0xC8, 0x40, 0xFF},
}

// BarHeight computes a bar's pixel height as value/size of the panel height.
// Pure function of the current array state.
func BarHeight(value, size, panelHeight int) int {
	if size <= 0 {
		return 0
	}
	h := value * panelHeight / size
	if h < 0 {
		h = 0
	} else if h > panelHeight {
		h = panelHeight
	}
	return h
}

// BarPanel turns array values plus per-index display colors into an RGBA
// framebuffer. It is owned by the stepping lane; the video backend copies
// the finished frame under its own guard.
type BarPanel struct {
	width  int
	height int
	colors []BarColor
	frame  []byte // RGBA scratch, reused every render
}

func NewBarPanel(size, width, height int) *BarPanel {
	return &BarPanel{
		width:  width,
		height: height,
		colors: make([]BarColor, size),
		frame:  make([]byte, width*height*4),
	}
}

// SetBarColor is handed to the MarkStore as its display callback.
// Out-of-range indices are ignored.
func (bp *BarPanel) SetBarColor(index int, c BarColor) {
	if index < 0 || index >= len(bp.colors) {
		return
	}
	bp.colors[index] = c
}

// Reset resizes the color table and reverts every bar to neutral.
func (bp *BarPanel) Reset(size int) {
	bp.colors = make([]BarColor, size)
}

// Render draws the bars bottom-up into the panel's RGBA scratch buffer and
// returns it. The buffer is reused across calls.
func (bp *BarPanel) Render(values []int) []byte {
	clear(bp.frame)

	n := len(values)
	if n == 0 {
		return bp.frame
	}
	barW := bp.width / n
	if barW < 1 {
		barW = 1
	}
	gap := 0
	if barW > 2 {
		gap = 1
	}

	for i, v := range values {
		if i >= len(bp.colors) {
			break
		}
		x0 := i * barW
		if x0 >= bp.width {
			break
		}
		x1 := x0 + barW - gap
		if x1 > bp.width {
			x1 = bp.width
		}
		h := BarHeight(v, n, bp.height)
		rgba := barPalette[bp.colors[i]]
		for y := bp.height - h; y < bp.height; y++ {
			row := y * bp.width * 4
			for x := x0; x < x1; x++ {
				off := row + x*4
				bp.frame[off] = rgba.R
				bp.frame[off+1] = rgba.G
				bp.frame[off+2] = rgba.B
				bp.frame[off+3] = rgba.A
			}
		}
	}
	return bp.frame
}

// Colors exposes the current display color of every bar for cell backends.
func (bp *BarPanel) Colors() []BarColor {
	return bp.colors
}
