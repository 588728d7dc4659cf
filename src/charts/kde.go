package charts

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// silvermanBandwidth picks a Gaussian kernel bandwidth by Silverman's rule
// of thumb. Degenerate samples (constant or near-empty) fall back to 1 so a
// violin still renders as a narrow lens instead of dividing by zero.
func silvermanBandwidth(vals []float64) float64 {
	if len(vals) < 2 {
		return 1
	}
	sd := stat.StdDev(vals, nil)
	bw := 1.06 * sd * math.Pow(float64(len(vals)), -1.0/5.0)
	if bw <= 0 || math.IsNaN(bw) {
		return 1
	}
	return bw
}

// kdeCurve evaluates a Gaussian kernel density estimate of vals at points
// evenly spaced over the sample range extended by three bandwidths.
func kdeCurve(vals []float64, points int) (xs, density []float64) {
	if len(vals) == 0 || points < 2 {
		return nil, nil
	}
	bw := silvermanBandwidth(vals)
	lo := floats.Min(vals) - 3*bw
	hi := floats.Max(vals) + 3*bw
	xs = make([]float64, points)
	density = make([]float64, points)
	step := (hi - lo) / float64(points-1)
	norm := 1.0 / (float64(len(vals)) * bw * math.Sqrt(2*math.Pi))
	for i := range xs {
		x := lo + float64(i)*step
		xs[i] = x
		sum := 0.0
		for _, v := range vals {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		density[i] = norm * sum
	}
	return xs, density
}
