// Package app wires the dataset and chart layers to an abstract
// presentation surface. The Notifier and Presenter interfaces keep the
// control flow free of any widget toolkit, so the full load/browse/chart
// cycle runs headless under test.
package app

import (
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"

	"github.com/dinorxen/sleepscope/src/charts"
	"github.com/dinorxen/sleepscope/src/dataset"
)

// DefaultDatasetPath is the fixed dataset location used at startup.
const DefaultDatasetPath = "Sleep_health_and_lifestyle_dataset.csv"

// TableRowLimit caps how many records the table view shows.
const TableRowLimit = 200

// Chart dimensions in pixels.
const (
	chartWidth  = 1000
	chartHeight = 600
	radialSize  = 720
)

// Notifier reports a user-visible error or status message. Implementations
// may block until the user dismisses the message.
type Notifier interface {
	Report(title, message string)
}

// TableView is a self-contained description of the tabular presentation.
type TableView struct {
	Title   string
	Columns []string
	Rows    []dataset.Record
}

// ChartView is one finished chart image ready for display.
type ChartView struct {
	Title string
	Image image.Image
}

// Presenter renders a view on some interactive surface. Both methods block
// until the user closes the surface, which is what serializes the menu loop.
type Presenter interface {
	PresentTable(v TableView)
	PresentChart(v ChartView)
}

// Analyzer owns the loaded dataset and drives the two presentation actions.
type Analyzer struct {
	ds        *dataset.Dataset
	notifier  Notifier
	presenter Presenter
	log       zerolog.Logger
}

// New returns an Analyzer with an empty dataset; call Load before Run.
func New(n Notifier, p Presenter, log zerolog.Logger) *Analyzer {
	return &Analyzer{ds: &dataset.Dataset{}, notifier: n, presenter: p, log: log}
}

// Load reads and categorizes the dataset at path. Failures are reported
// through the Notifier and leave the Analyzer with an empty dataset;
// subsequent actions then report "no data" instead of failing.
func (a *Analyzer) Load(path string) {
	ds, err := dataset.Load(path)
	if err != nil {
		a.ds = &dataset.Dataset{}
		if dataset.IsNotFound(err) {
			a.log.Error().Str("path", path).Msg("dataset file not found")
			a.notifier.Report("Error", fmt.Sprintf("File %q not found. Check the path and try again.", path))
			return
		}
		a.log.Error().Err(err).Str("path", path).Msg("dataset load failed")
		a.notifier.Report("Error", fmt.Sprintf("Could not load the dataset: %v", err))
		return
	}
	if err := ds.DeriveQualityCategories(); err != nil {
		a.ds = &dataset.Dataset{}
		a.log.Error().Err(err).Msg("category derivation failed")
		a.notifier.Report("Error", fmt.Sprintf("Could not load the dataset: %v", err))
		return
	}
	a.ds = ds
	a.log.Info().
		Str("path", path).
		Int("records", ds.Len()).
		Int("dropped", ds.Dropped).
		Msg("dataset loaded")
}

// Dataset exposes the loaded dataset, mainly for tests.
func (a *Analyzer) Dataset() *dataset.Dataset { return a.ds }

// ShowDataset presents the first TableRowLimit records in the table view.
func (a *Analyzer) ShowDataset() {
	if a.ds.Empty() {
		a.notifier.Report("Error", "No data to display")
		return
	}
	head := a.ds.Head(TableRowLimit)
	a.presenter.PresentTable(TableView{
		Title:   "Full Dataset",
		Columns: head.Columns,
		Rows:    head.Records,
	})
}

// ShowCharts builds and presents the four charts in a fixed sequence. A
// failing chart is reported and the suite moves on to the next one.
func (a *Analyzer) ShowCharts() {
	if a.ds.Empty() {
		a.notifier.Report("Error", "No data to analyze")
		return
	}
	suite := []struct {
		title string
		build func() (image.Image, error)
	}{
		{"Stress Level vs Quality of Sleep", func() (image.Image, error) {
			return charts.StressQuality(a.ds, chartWidth, chartHeight)
		}},
		{"Sleep Duration vs Daily Steps", func() (image.Image, error) {
			return charts.StepsDuration(a.ds, chartWidth, chartHeight)
		}},
		{"Quality of Sleep by Gender", func() (image.Image, error) {
			return charts.QualityByGender(a.ds, chartWidth, chartHeight)
		}},
		{"Normalized Feature Averages", func() (image.Image, error) {
			return charts.NormalizedFeatureRadial(a.ds, radialSize)
		}},
	}
	for _, c := range suite {
		start := time.Now()
		img, err := c.build()
		if err != nil {
			a.log.Error().Err(err).Str("chart", c.title).Msg("chart build failed")
			a.notifier.Report("Chart Error", fmt.Sprintf("Could not render %q: %v", c.title, err))
			continue
		}
		a.log.Debug().Str("chart", c.title).Dur("took", time.Since(start)).Msg("chart rendered")
		a.presenter.PresentChart(ChartView{Title: c.title, Image: img})
	}
}
