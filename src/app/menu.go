package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Run drives the interactive menu until the user picks exit or input ends.
// Recognized choices are exactly "1", "2" and "3"; anything else prints an
// invalid-input notice and re-prompts. Action failures surface through the
// Notifier and never terminate the loop.
func (a *Analyzer) Run(in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "Menu:")
		fmt.Fprintln(out, "1. Show dataset")
		fmt.Fprintln(out, "2. Show charts")
		fmt.Fprintln(out, "3. Exit")
		fmt.Fprint(out, "Enter choice: ")
		if !sc.Scan() {
			// stdin closed; treat like an explicit exit so the process
			// cannot spin on EOF.
			fmt.Fprintln(out)
			return
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			a.ShowDataset()
		case "2":
			a.ShowCharts()
		case "3":
			fmt.Fprintln(out, "Shutting down")
			return
		default:
			fmt.Fprintln(out, "Invalid input")
		}
	}
}
