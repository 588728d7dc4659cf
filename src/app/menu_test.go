package app

import (
	"strings"
	"testing"
)

func TestMenuInvalidThenTableThenExit(t *testing.T) {
	a, _, p := newTestAnalyzer(t)
	a.Load(writeCSV(t, testCSV))

	var out strings.Builder
	a.Run(strings.NewReader("9\n1\n3\n"), &out)

	got := out.String()
	if n := strings.Count(got, "Invalid input"); n != 1 {
		t.Fatalf("invalid-input messages = %d, want 1\n%s", n, got)
	}
	if len(p.tables) != 1 {
		t.Fatalf("table presentations = %d, want 1", len(p.tables))
	}
	if !strings.Contains(got, "Shutting down") {
		t.Fatalf("missing farewell:\n%s", got)
	}
	// three prompts total: one per consumed input line, none after exit
	if n := strings.Count(got, "Menu:"); n != 3 {
		t.Fatalf("menu prompts = %d, want 3\n%s", n, got)
	}
	if strings.HasSuffix(strings.TrimSpace(got), "Enter choice:") {
		t.Fatalf("loop prompted again after exit:\n%s", got)
	}
}

func TestMenuChartsChoice(t *testing.T) {
	a, _, p := newTestAnalyzer(t)
	a.Load(writeCSV(t, testCSV))

	var out strings.Builder
	a.Run(strings.NewReader("2\n3\n"), &out)
	if len(p.charts) != 4 {
		t.Fatalf("chart presentations = %d, want 4", len(p.charts))
	}
}

func TestMenuStopsOnEOF(t *testing.T) {
	a, _, _ := newTestAnalyzer(t)

	var out strings.Builder
	a.Run(strings.NewReader(""), &out) // must return, not spin
	if n := strings.Count(out.String(), "Menu:"); n != 1 {
		t.Fatalf("menu prompts = %d, want 1", n)
	}
}

func TestMenuTrimsWhitespace(t *testing.T) {
	a, n, p := newTestAnalyzer(t)
	a.Load(writeCSV(t, testCSV))

	var out strings.Builder
	a.Run(strings.NewReader("  1  \n3\n"), &out)
	if len(p.tables) != 1 {
		t.Fatalf("padded choice should still show the table")
	}
	if len(n.reports) != 0 {
		t.Fatalf("unexpected reports: %v", n.reports)
	}
}
