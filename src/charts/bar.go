package charts

import (
	"image"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dinorxen/sleepscope/src/dataset"
)

// StressQuality renders one bar per distinct stress level, bar height being
// the mean quality-of-sleep score at that level and bar color keyed to the
// stress value on the viridis ramp.
func StressQuality(ds *dataset.Dataset, width, height int) (image.Image, error) {
	groups, err := ds.GroupMeans(dataset.StressLevelColumn, dataset.QualityColumn)
	if err != nil {
		return nil, err
	}
	lo := groups[0].KeyValue
	hi := groups[len(groups)-1].KeyValue

	bars := make([]chart.Value, len(groups))
	for i, g := range groups {
		bars[i] = chart.Value{
			Value: g.Mean,
			Label: g.Key,
			Style: chart.Style{
				FillColor:   viridis(g.KeyValue, lo, hi),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		}
	}

	barWidth := (width - 120) / len(groups)
	if barWidth > 80 {
		barWidth = 80
	}
	if barWidth < 12 {
		barWidth = 12
	}

	bc := chart.BarChart{
		Title:      "Stress Level vs Quality of Sleep",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		XAxis:      chart.Style{},
		YAxis: chart.YAxis{
			Name:  "Quality of Sleep",
			Range: &chart.ContinuousRange{Min: 0, Max: 10},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"}, {Value: 2, Label: "2"}, {Value: 4, Label: "4"},
				{Value: 6, Label: "6"}, {Value: 8, Label: "8"}, {Value: 10, Label: "10"},
			},
		},
		Bars: bars,
	}
	return renderPNG(bc)
}
