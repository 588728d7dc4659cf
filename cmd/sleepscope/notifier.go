package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dinorxen/sleepscope/cmd/sleepscope/uihelpers"
)

// messageWrapWidth is the fixed wrap column for error dialog text.
const messageWrapWidth = 60

// fyneNotifier shows errors in a small modal window. Report blocks the
// calling goroutine until the user dismisses the message, so it must never
// be called from the Fyne event loop itself.
type fyneNotifier struct {
	app fyne.App
}

func (n *fyneNotifier) Report(title, message string) {
	done := make(chan struct{})
	fyne.Do(func() {
		w := n.app.NewWindow(title)
		msg := widget.NewLabel(uihelpers.WrapText(message, messageWrapWidth))
		msg.Alignment = fyne.TextAlignCenter
		ok := widget.NewButton("OK", func() { w.Close() })
		w.SetContent(container.NewVBox(msg, container.NewCenter(ok)))
		w.SetOnClosed(func() { close(done) })
		w.CenterOnScreen()
		w.Show()
	})
	<-done
}
