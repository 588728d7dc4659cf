// Package charts builds the four descriptive visualizations of the sleep
// dataset. Every builder is a pure function from a Dataset and explicit
// dimensions to an image.Image; nothing here touches windowing state, so the
// whole package renders headless in tests.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// pngRenderable is satisfied by both chart.Chart and chart.BarChart.
type pngRenderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// renderPNG rasterizes a go-chart figure and decodes it back into an
// image.Image for display.
func renderPNG(c pngRenderable) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart png: %w", err)
	}
	return img, nil
}
