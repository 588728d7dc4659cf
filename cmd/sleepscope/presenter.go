package main

import (
	"image/color"
	"image/png"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dinorxen/sleepscope/cmd/sleepscope/uihelpers"
	"github.com/dinorxen/sleepscope/src/app"
)

// fynePresenter opens one window per view. Both methods block until the
// window closes, which keeps the menu loop strictly sequential.
type fynePresenter struct {
	app fyne.App
}

func (p *fynePresenter) PresentTable(v app.TableView) {
	done := make(chan struct{})
	fyne.Do(func() {
		w := p.app.NewWindow(v.Title)
		w.Resize(fyne.NewSize(1000, 600))

		table := widget.NewTable(
			// one header row above the data rows
			func() (int, int) { return len(v.Rows) + 1, len(v.Columns) },
			func() fyne.CanvasObject {
				bg := canvas.NewRectangle(color.Transparent)
				return container.NewStack(bg, widget.NewLabel(""))
			},
			func(id widget.TableCellID, o fyne.CanvasObject) {
				cell := o.(*fyne.Container)
				bg := cell.Objects[0].(*canvas.Rectangle)
				lbl := cell.Objects[1].(*widget.Label)
				if id.Row == 0 {
					bg.FillColor = color.Transparent
					lbl.TextStyle = fyne.TextStyle{Bold: true}
					lbl.SetText(v.Columns[id.Col])
				} else {
					bg.FillColor = uihelpers.RowFill(id.Row)
					lbl.TextStyle = fyne.TextStyle{}
					lbl.SetText(v.Rows[id.Row-1][id.Col])
				}
				bg.Refresh()
			},
		)
		for i := range v.Columns {
			table.SetColumnWidth(i, 120)
		}

		w.SetContent(table)
		w.SetOnClosed(func() { close(done) })
		w.Show()
	})
	<-done
}

func (p *fynePresenter) PresentChart(v app.ChartView) {
	done := make(chan struct{})
	fyne.Do(func() {
		w := p.app.NewWindow(v.Title)
		img := canvas.NewImageFromImage(v.Image)
		img.FillMode = canvas.ImageFillContain

		export := widget.NewButton("Export PNG…", func() { exportChartPNG(w, v) })
		w.SetContent(container.NewBorder(nil, container.NewCenter(export), nil, nil, img))

		b := v.Image.Bounds()
		ww, wh := uihelpers.ComputeWindowSize(b.Dx(), b.Dy())
		w.Resize(fyne.NewSize(ww, wh))
		w.SetOnClosed(func() { close(done) })
		w.Show()
	})
	<-done
}

// exportChartPNG saves the chart image through a file-save dialog.
func exportChartPNG(w fyne.Window, v app.ChartView) {
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, v.Image)
	}, w)
	fs.SetFileName(strings.ToLower(strings.ReplaceAll(v.Title, " ", "_")) + ".png")
	fs.Show()
}
