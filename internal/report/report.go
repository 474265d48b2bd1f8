package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spigell/answer-scorer/internal/scoring"
)

const (
	StatusGood    = "good"
	StatusAverage = "average"
	StatusPoor    = "poor"
	StatusFailed  = "failed"

	goodRatio    = 0.8
	averageRatio = 0.5

	VerdictExcellent = "Excellent! You are a strong candidate."
	VerdictAverage   = "Average. Good foundation but needs polish."
	VerdictWeak      = "Needs Improvement. Focus more on key concepts."
)

// Entry is one scored answer of an interview session.
type Entry struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Feedback string   `json:"feedback"`
	Missing  []string `json:"missing_keywords,omitempty"`
	Status   string   `json:"status"`
	Error    string   `json:"error,omitempty"`
}

// Report summarises a session. Failed entries are listed but do not count towards the totals.
type Report struct {
	Entries    []Entry `json:"entries"`
	Total      float64 `json:"total"`
	Max        float64 `json:"max"`
	Percentage float64 `json:"percentage"`
	Verdict    string  `json:"verdict"`
}

func NewEntry(id, question, answer string, res *scoring.Result) Entry {
	entry := Entry{
		ID:       id,
		Question: question,
		Answer:   answer,
	}
	if res == nil {
		entry.Status = StatusFailed
		return entry
	}

	entry.Score = res.Score
	entry.MaxScore = res.MaxScore
	entry.Feedback = res.Feedback
	entry.Missing = res.Missing
	entry.Status = Status(res.Score, res.MaxScore)
	return entry
}

// FailedEntry records an answer the engine could not score.
func FailedEntry(id, question, answer string, err error) Entry {
	entry := NewEntry(id, question, answer, nil)
	if err != nil {
		entry.Error = err.Error()
	}
	return entry
}

// Status grades a single score relative to its scale.
func Status(score, maxScore float64) string {
	if maxScore <= 0 {
		return StatusPoor
	}
	ratio := score / maxScore
	switch {
	case ratio >= goodRatio:
		return StatusGood
	case ratio >= averageRatio:
		return StatusAverage
	default:
		return StatusPoor
	}
}

// Verdict returns the session message for an overall percentage.
func Verdict(percentage float64) string {
	switch {
	case percentage >= goodRatio*100:
		return VerdictExcellent
	case percentage >= averageRatio*100:
		return VerdictAverage
	default:
		return VerdictWeak
	}
}

func New(entries []Entry) *Report {
	r := &Report{Entries: entries}
	if r.Entries == nil {
		r.Entries = []Entry{}
	}

	for _, e := range r.Entries {
		if e.Status == StatusFailed {
			continue
		}
		r.Total += e.Score
		r.Max += e.MaxScore
	}

	if r.Max > 0 {
		r.Percentage = r.Total / r.Max * 100
	}
	r.Verdict = Verdict(r.Percentage)

	return r
}

func (r *Report) Len() int {
	return len(r.Entries)
}

// Summary is a one-line rendering of the totals.
func (r *Report) Summary() string {
	return fmt.Sprintf("Total Score: %s/%s (%.1f%%). %s",
		formatScore(r.Total), formatScore(r.Max), r.Percentage, r.Verdict)
}

// WriteCSV writes one row per entry with a header row.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Question", "Answer", "Score", "Feedback", "Status"}); err != nil {
		return err
	}

	for _, e := range r.Entries {
		feedback := e.Feedback
		if e.Error != "" {
			feedback = e.Error
		}
		row := []string{e.Question, e.Answer, formatScore(e.Score), feedback, e.Status}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DumpToTmpFile writes the report as indented JSON to a new temporary file and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "interview_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
