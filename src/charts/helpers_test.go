package charts

import (
	"math"
	"testing"
)

func TestViridisEndpoints(t *testing.T) {
	lo := viridis(0, 0, 10)
	first := viridisAnchors[0]
	if lo.R != first.R || lo.G != first.G || lo.B != first.B {
		t.Fatalf("low end mismatch: %+v", lo)
	}
	hi := viridis(10, 0, 10)
	last := viridisAnchors[len(viridisAnchors)-1]
	if hi.R != last.R || hi.G != last.G || hi.B != last.B {
		t.Fatalf("high end mismatch: %+v", hi)
	}
	// out-of-range values clamp instead of wrapping
	below := viridis(-5, 0, 10)
	if below != lo {
		t.Fatalf("below-range should clamp to low end: %+v", below)
	}
	// degenerate range maps to the low end, no division by zero
	flat := viridis(7, 7, 7)
	if flat != lo {
		t.Fatalf("degenerate range should map to low end: %+v", flat)
	}
}

func TestGenderFillFallback(t *testing.T) {
	if genderFill("Male", 0) != genderFills["Male"] {
		t.Fatal("known label must use its fixed fill")
	}
	if genderFill("Other", 2) != featurePalette[2] {
		t.Fatal("unknown label must fall back to the feature palette")
	}
}

func TestNiceTicksSpanEnds(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %v", ticks)
	}
	if ticks[0].Value > 0 {
		t.Fatalf("first tick %v should not exceed min", ticks[0].Value)
	}
	if last := ticks[len(ticks)-1].Value; last < 100 {
		t.Fatalf("last tick %v should not be below max", last)
	}
	if got := niceTicks(5, 5, 1); got != nil {
		t.Fatalf("invalid n should yield nil, got %v", got)
	}
}

func TestNiceAxisBounds(t *testing.T) {
	lo, hi := niceAxisBounds(3, 97)
	if lo > 3 || hi < 97 {
		t.Fatalf("bounds [%v,%v] must contain the data range", lo, hi)
	}
	lo, hi = niceAxisBounds(5, 5)
	if hi <= lo {
		t.Fatalf("degenerate input must widen: [%v,%v]", lo, hi)
	}
}

func TestKDECurveIntegratesToOne(t *testing.T) {
	vals := []float64{4, 5, 5, 6, 6, 6, 7, 8}
	xs, density := kdeCurve(vals, 200)
	if len(xs) != 200 || len(density) != 200 {
		t.Fatalf("unexpected curve lengths %d/%d", len(xs), len(density))
	}
	// trapezoidal integral of a density over +-3 bandwidths is close to 1
	integral := 0.0
	for i := 1; i < len(xs); i++ {
		integral += (density[i] + density[i-1]) / 2 * (xs[i] - xs[i-1])
	}
	if math.Abs(integral-1) > 0.02 {
		t.Fatalf("density integral %v not near 1", integral)
	}
	for _, d := range density {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("non-finite or negative density %v", d)
		}
	}
}

func TestKDECurveDegenerateInputs(t *testing.T) {
	if xs, _ := kdeCurve(nil, 50); xs != nil {
		t.Fatal("no values should yield no curve")
	}
	// constant sample: bandwidth falls back, curve still finite
	xs, density := kdeCurve([]float64{5, 5, 5}, 50)
	if len(xs) != 50 {
		t.Fatalf("expected 50 points, got %d", len(xs))
	}
	for _, d := range density {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("non-finite density %v for constant sample", d)
		}
	}
}

func TestSilvermanBandwidth(t *testing.T) {
	if bw := silvermanBandwidth([]float64{1}); bw != 1 {
		t.Fatalf("single value fallback = %v, want 1", bw)
	}
	if bw := silvermanBandwidth([]float64{3, 3, 3, 3}); bw != 1 {
		t.Fatalf("constant sample fallback = %v, want 1", bw)
	}
	bw := silvermanBandwidth([]float64{1, 2, 3, 4, 5, 6})
	if bw <= 0 || math.IsNaN(bw) {
		t.Fatalf("bad bandwidth %v", bw)
	}
}

func TestAngleHelpers(t *testing.T) {
	if got := wrapAngle(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > 1e-12 {
		t.Fatalf("wrapAngle(-pi/2) = %v", got)
	}
	if got := angleDelta(0.1, 2*math.Pi-0.1); math.Abs(got-0.2) > 1e-12 {
		t.Fatalf("angleDelta across zero = %v, want 0.2", got)
	}
}
