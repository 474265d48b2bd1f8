package scoring

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		expect  string
		wantErr bool
	}{
		{input: "", expect: StrategyAnchor},
		{input: " Anchor ", expect: StrategyAnchor},
		{input: "COVERAGE", expect: StrategyCoverage},
		{input: "llm", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.expect {
			t.Fatalf("expected %q, got %q", tt.expect, got)
		}
	}
}

func TestBandsReturnCopies(t *testing.T) {
	t.Parallel()

	bands := AnchorBands()
	bands[0].Feedback = "changed"
	if anchorBands[0].Feedback == "changed" {
		t.Fatal("AnchorBands must not expose the package table")
	}
	if len(CoverageBands()) != 3 {
		t.Fatalf("expected 3 coverage bands")
	}
}

func TestScorersAreSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	sim := &fakeSimilarity{fn: func(a, _ string) float64 {
		return float64(len(a)%10) / 10
	}}
	scorers := []Scorer{newAnchor(t, sim), newCoverage(t, sim)}

	for _, scorer := range scorers {
		expected := make(map[int]*Result)
		for i := 0; i < 20; i++ {
			res, err := scorer.Score(context.Background(), request(i))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expected[i] = res
		}

		var wg sync.WaitGroup
		errs := make(chan error, 200)
		for n := 0; n < 10; n++ {
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					res, err := scorer.Score(context.Background(), request(i))
					if err != nil {
						errs <- err
						return
					}
					if res.Score != expected[i].Score || res.Feedback != expected[i].Feedback {
						errs <- fmt.Errorf("%s: request %d gave %+v, expected %+v", scorer.Name(), i, res, expected[i])
					}
				}(i)
			}
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Fatal(err)
		}
	}
}

func request(i int) Request {
	return Request{
		Answer:   fmt.Sprintf("Answer number %d talks about Go channels %s", i, strings.Repeat("!", i%7)),
		Keyword:  "Go",
		Keywords: []string{"channel", "goroutine"},
	}
}
