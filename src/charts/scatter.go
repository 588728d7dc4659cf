package charts

import (
	"image"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/dinorxen/sleepscope/src/dataset"
)

// StepsDuration renders sleep duration against daily steps, one dot per
// record, dot color following the record's quality-of-sleep score through
// the viridis ramp.
func StepsDuration(ds *dataset.Dataset, width, height int) (image.Image, error) {
	if ds.Empty() {
		return nil, dataset.ErrNoData
	}
	xs, err := ds.Floats(dataset.DailyStepsColumn)
	if err != nil {
		return nil, err
	}
	ys, err := ds.Floats(dataset.SleepDurationColumn)
	if err != nil {
		return nil, err
	}
	quality, err := ds.Floats(dataset.QualityColumn)
	if err != nil {
		return nil, err
	}
	qLo, qHi := floats.Min(quality), floats.Max(quality)

	series := chart.ContinuousSeries{
		Name:    "Sleep Duration",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: 0,
			DotWidth:    4,
			DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
				return viridis(quality[index], qLo, qHi)
			},
		},
	}

	xMin, xMax := niceAxisBounds(floats.Min(xs), floats.Max(xs))
	yMin, yMax := niceAxisBounds(floats.Min(ys), floats.Max(ys))
	ch := chart.Chart{
		Title:      "Sleep Duration vs Daily Steps",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Width:      width,
		Height:     height,
		XAxis: chart.XAxis{
			Name:  "Daily Steps",
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: niceTicks(xMin, xMax, 8),
		},
		YAxis: chart.YAxis{
			Name:  "Sleep Duration (hours)",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: niceTicks(yMin, yMax, 6),
		},
		Series: []chart.Series{series},
	}
	return renderPNG(ch)
}
