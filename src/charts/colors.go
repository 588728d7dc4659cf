package charts

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// featurePalette is the fixed six-color palette of the radial chart, one
// color per summarized feature.
var featurePalette = []color.RGBA{
	{R: 0x59, G: 0xa6, B: 0xdd, A: 0xff},
	{R: 0xff, G: 0xa7, B: 0x5b, A: 0xff},
	{R: 0x80, G: 0xf5, B: 0x80, A: 0xff},
	{R: 0xf7, G: 0x66, B: 0x66, A: 0xff},
	{R: 0xc7, G: 0x92, B: 0xf8, A: 0xff},
	{R: 0xfd, G: 0x9d, B: 0x89, A: 0xff},
}

// genderFills maps the expected gender labels to their fixed violin fills
// (light blue / light coral).
var genderFills = map[string]color.RGBA{
	"Male":   {R: 173, G: 216, B: 230, A: 255},
	"Female": {R: 240, G: 128, B: 128, A: 255},
}

// genderFill returns the fixed fill for a known gender label, falling back
// to the feature palette for anything unexpected in the data.
func genderFill(label string, i int) color.RGBA {
	if c, ok := genderFills[label]; ok {
		return c
	}
	return featurePalette[i%len(featurePalette)]
}

// viridisAnchors are evenly spaced samples of the viridis colormap.
var viridisAnchors = []color.RGBA{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 72, G: 40, B: 120, A: 255},
	{R: 62, G: 74, B: 137, A: 255},
	{R: 49, G: 104, B: 142, A: 255},
	{R: 38, G: 130, B: 142, A: 255},
	{R: 31, G: 158, B: 137, A: 255},
	{R: 53, G: 183, B: 121, A: 255},
	{R: 109, G: 205, B: 89, A: 255},
	{R: 180, G: 222, B: 44, A: 255},
	{R: 223, G: 227, B: 42, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

// viridis maps v within [lo,hi] onto the perceptual viridis ramp by linear
// interpolation between anchors. A degenerate range maps to the low end.
func viridis(v, lo, hi float64) drawing.Color {
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(viridisAnchors)-1)
	i := int(pos)
	if i >= len(viridisAnchors)-1 {
		a := viridisAnchors[len(viridisAnchors)-1]
		return drawing.Color{R: a.R, G: a.G, B: a.B, A: a.A}
	}
	f := pos - float64(i)
	a, b := viridisAnchors[i], viridisAnchors[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + f*(float64(y)-float64(x))) }
	return drawing.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
