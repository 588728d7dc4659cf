// Package uihelpers holds the pure UI arithmetic of the viewer so it stays
// testable without a display.
package uihelpers

import (
	"image/color"
	"strings"
)

// WrapText greedily wraps s onto lines of at most width characters, breaking
// only between words. Words longer than width stay on their own line.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = len(word)
		} else {
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + len(word)
		}
	}
	return b.String()
}

// Row shading for the table view, 1-indexed to match the displayed row
// number: even rows plain white, odd rows lightly shaded.
var (
	evenRowFill = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	oddRowFill  = color.RGBA{R: 0xf9, G: 0xf9, B: 0xf9, A: 0xff}
)

// RowFill returns the background fill for table row n (1-indexed).
func RowFill(n int) color.Color {
	if n%2 == 0 {
		return evenRowFill
	}
	return oddRowFill
}

// ComputeWindowSize clamps a chart image's dimensions onto a sensible
// window size: wide enough to read, never larger than a laptop screen.
func ComputeWindowSize(imgW, imgH int) (float32, float32) {
	w := imgW
	if w < 480 {
		w = 480
	}
	if w > 1280 {
		w = 1280
	}
	h := imgH + 60 // room for the export bar
	if h < 360 {
		h = 360
	}
	if h > 840 {
		h = 840
	}
	return float32(w), float32(h)
}
