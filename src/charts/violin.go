package charts

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/dinorxen/sleepscope/src/dataset"
)

const violinDPI = 96

// QualityByGender renders the quality-of-sleep distribution per gender as
// mirrored kernel-density outlines, one fixed fill color per gender.
func QualityByGender(ds *dataset.Dataset, width, height int) (image.Image, error) {
	groups, err := ds.GroupValues(dataset.GenderColumn, dataset.QualityColumn)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Quality of Sleep by Gender"
	p.Y.Label.Text = "Quality of Sleep"

	const halfWidth = 0.4
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Key
		xs, density := kdeCurve(g.Values, 80)
		if len(xs) == 0 {
			continue
		}
		peak := floats.Max(density)
		if peak <= 0 {
			peak = 1
		}
		center := float64(i)
		pts := make(plotter.XYs, 0, 2*len(xs))
		for j := range xs {
			pts = append(pts, plotter.XY{X: center + density[j]/peak*halfWidth, Y: xs[j]})
		}
		for j := len(xs) - 1; j >= 0; j-- {
			pts = append(pts, plotter.XY{X: center - density[j]/peak*halfWidth, Y: xs[j]})
		}
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		poly.Color = genderFill(g.Key, i)
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)
	}
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)/violinDPI*vg.Inch, vg.Length(height)/violinDPI*vg.Inch),
		vgimg.UseDPI(violinDPI),
	)
	p.Draw(draw.New(c))
	return c.Image(), nil
}
