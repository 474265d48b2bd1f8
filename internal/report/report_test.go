package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spigell/answer-scorer/internal/scoring"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score, max float64
		expect     string
	}{
		{score: 10, max: 10, expect: StatusGood},
		{score: 8, max: 10, expect: StatusGood},
		{score: 7, max: 10, expect: StatusAverage},
		{score: 5, max: 10, expect: StatusAverage},
		{score: 4, max: 10, expect: StatusPoor},
		{score: 80, max: 100, expect: StatusGood},
		{score: 49.9, max: 100, expect: StatusPoor},
		{score: 3, max: 0, expect: StatusPoor},
	}

	for _, tt := range tests {
		if got := Status(tt.score, tt.max); got != tt.expect {
			t.Fatalf("Status(%v, %v): expected %q, got %q", tt.score, tt.max, tt.expect, got)
		}
	}
}

func TestVerdict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percentage float64
		expect     string
	}{
		{percentage: 100, expect: VerdictExcellent},
		{percentage: 80, expect: VerdictExcellent},
		{percentage: 79.9, expect: VerdictAverage},
		{percentage: 50, expect: VerdictAverage},
		{percentage: 0, expect: VerdictWeak},
	}

	for _, tt := range tests {
		if got := Verdict(tt.percentage); got != tt.expect {
			t.Fatalf("Verdict(%v): expected %q, got %q", tt.percentage, tt.expect, got)
		}
	}
}

func sampleReport() *Report {
	return New([]Entry{
		NewEntry("q1", "What is Go?", "Go is a compiled language.", &scoring.Result{
			Strategy: scoring.StrategyAnchor, Score: 9, MaxScore: 10, Feedback: "Excellent!",
		}),
		NewEntry("q2", "Explain channels", "No idea", &scoring.Result{
			Strategy: scoring.StrategyAnchor, Score: 6, MaxScore: 10, Feedback: "Good attempt, \"but\" vague.",
		}),
		FailedEntry("q3", "Explain closures", "Functions with state", errors.New("embedding unavailable")),
	})
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	r := sampleReport()
	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}
	if r.Total != 15 || r.Max != 20 {
		t.Fatalf("unexpected totals: %v/%v", r.Total, r.Max)
	}
	if r.Percentage != 75 {
		t.Fatalf("unexpected percentage: %v", r.Percentage)
	}
	if r.Verdict != VerdictAverage {
		t.Fatalf("unexpected verdict: %q", r.Verdict)
	}
	if r.Entries[0].Status != StatusGood || r.Entries[1].Status != StatusAverage || r.Entries[2].Status != StatusFailed {
		t.Fatalf("unexpected statuses: %+v", r.Entries)
	}
	if r.Summary() != "Total Score: 15/20 (75.0%). Average. Good foundation but needs polish." {
		t.Fatalf("unexpected summary: %q", r.Summary())
	}
}

func TestNewReportEmpty(t *testing.T) {
	t.Parallel()

	r := New(nil)
	if r.Entries == nil || r.Percentage != 0 || r.Verdict != VerdictWeak {
		t.Fatalf("unexpected empty report: %+v", r)
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := sampleReport().WriteCSV(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Question,Answer,Score,Feedback,Status" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[2] != `Explain channels,No idea,6,"Good attempt, ""but"" vague.",average` {
		t.Fatalf("unexpected quoted row: %q", lines[2])
	}
	if lines[3] != "Explain closures,Functions with state,0,embedding unavailable,failed" {
		t.Fatalf("unexpected failed row: %q", lines[3])
	}
}

func TestDumpToTmpFile(t *testing.T) {
	t.Parallel()

	filename, err := sampleReport().DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { os.Remove(filename) })

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding dump: %v", err)
	}
	if decoded.Len() != 3 || decoded.Verdict != VerdictAverage {
		t.Fatalf("unexpected dump contents: %+v", decoded)
	}
}
