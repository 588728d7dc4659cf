package charts

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dinorxen/sleepscope/src/dataset"
)

// Radial chart geometry. Values live on a 0..110 radial scale so the
// reference circle at 100 keeps some headroom, matching the bar annotations
// drawn just past each bar tip.
const (
	radialScaleMax = 110.0
	radialMargin   = 90
)

// NormalizedFeatureRadial renders one radial bar per summarized feature.
// Bar length is the feature's mean normalized onto [0,100] within its own
// min..max range; a constant feature normalizes to 0 and draws no bar. Bars
// sit at equal angular spacing, starting at the top and proceeding
// clockwise, with a dashed reference circle at radius 100 and a name+value
// annotation past each bar tip. No radial ticks or gridlines.
func NormalizedFeatureRadial(ds *dataset.Dataset, size int) (image.Image, error) {
	stats, err := ds.DescribeAll(dataset.RadialFeatures)
	if err != nil {
		return nil, err
	}
	norms := make([]float64, len(stats))
	for i, s := range stats {
		norms[i] = s.Normalized()
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	cx := float64(size) / 2
	cy := float64(size) / 2
	scale := (float64(size)/2 - radialMargin) / radialScaleMax
	sector := 2 * math.Pi / float64(len(stats))

	// Wedge fill by pixel membership: radius within bar length, angle within
	// the bar's sector. Bars are centered on k*sector in data angle, where
	// data angle 0 is the top of the chart and grows clockwise.
	edgePx := 1.5
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			r := math.Hypot(dx, dy) / scale
			if r > radialScaleMax {
				continue
			}
			phi := math.Atan2(-dy, dx)
			theta := wrapAngle(math.Pi/2 - phi)
			k := int(math.Floor(theta/sector+0.5)) % len(stats)
			d := math.Abs(angleDelta(theta, float64(k)*sector))
			if d > sector/2 || r > norms[k] {
				continue
			}
			c := featurePalette[k]
			radialEdge := (norms[k]-r)*scale <= edgePx
			angularEdge := (sector/2-d)*r*scale <= edgePx
			if radialEdge || angularEdge {
				c = color.RGBA{A: 255}
			}
			img.SetRGBA(px, py, c)
		}
	}

	drawDashedCircle(img, cx, cy, 100*scale, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	face := basicfont.Face7x13
	grey := color.RGBA{R: 96, G: 96, B: 96, A: 255}
	black := color.RGBA{A: 255}
	drawCenteredText(img, face, "Normalized Feature Averages (100 = maximum)", cx, 20, black)
	drawCenteredText(img, face, "100 = maximum", cx, cy-105*scale-4, grey)
	for i, s := range stats {
		labelR := norms[i] + 8
		phi := math.Pi/2 - float64(i)*sector
		lx := cx + labelR*scale*math.Cos(phi)
		ly := cy - labelR*scale*math.Sin(phi)
		drawCenteredText(img, face, s.Name, lx, ly-3, black)
		drawCenteredText(img, face, fmt.Sprintf("%.1f", norms[i]), lx, ly+10, black)
	}
	return img, nil
}

// wrapAngle maps an angle into [0, 2pi).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// angleDelta returns the signed smallest difference a-b in [-pi, pi].
func angleDelta(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// drawDashedCircle traces a dashed circle of the given pixel radius, dashes
// and gaps alternating every five degrees.
func drawDashedCircle(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	stepDeg := 0.25
	for deg := 0.0; deg < 360; deg += stepDeg {
		if int(deg/5)%2 == 1 {
			continue
		}
		a := deg * math.Pi / 180
		x := int(cx + radius*math.Cos(a))
		y := int(cy + radius*math.Sin(a))
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawCenteredText draws s horizontally centered at x with baseline y.
func drawCenteredText(img *image.RGBA, face *basicfont.Face, s string, x, y float64, c color.RGBA) {
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	w := dr.MeasureString(s).Ceil()
	dr.Dot = fixed.Point26_6{X: fixed.I(int(x) - w/2), Y: fixed.I(int(y))}
	dr.DrawString(s)
}
