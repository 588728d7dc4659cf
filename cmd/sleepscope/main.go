// sleepscope is a small desktop viewer for a sleep-health dataset: a stdin
// menu loop offering a scrollable table of the raw records and a fixed suite
// of four descriptive charts, each rendered off-screen and shown in its own
// window.
package main

import (
	"os"

	fyne "fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/dinorxen/sleepscope/src/app"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	a := fyneapp.NewWithID("com.dinorxen.sleepscope")
	analyzer := app.New(&fyneNotifier{app: a}, &fynePresenter{app: a}, log)

	// The menu loop owns stdin and blocks on window-close signals, so it
	// lives off the main goroutine; Fyne keeps the main one for its event
	// loop. All widget work goes through fyne.Do.
	go func() {
		analyzer.Load(app.DefaultDatasetPath)
		analyzer.Run(os.Stdin, os.Stdout)
		log.Info().Msg("exiting")
		fyne.Do(a.Quit)
	}()

	a.Run()
}
