package scoring

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/answer-scorer/internal/nlp"
)

type comparison struct {
	a, b string
}

type fakeSimilarity struct {
	mu    sync.Mutex
	value float64
	fn    func(a, b string) float64
	err   error
	calls []comparison
}

func (f *fakeSimilarity) Similarity(_ context.Context, a, b string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, comparison{a: a, b: b})
	if f.err != nil {
		return 0, f.err
	}
	if f.fn != nil {
		return f.fn(a, b), nil
	}
	return f.value, nil
}

func newAnchor(t *testing.T, sim nlp.Similarity) *AnchorScorer {
	t.Helper()
	s, err := NewAnchorScorer(sim, zap.NewNop(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestAnchorScorerDegenerateAnswers(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"", "    ", "abcd", "  ab  \n", "\tyes\t"} {
		for _, keyword := range []string{"Python", "", "abcd"} {
			sim := &fakeSimilarity{value: 1}
			res, err := newAnchor(t, sim).Evaluate(context.Background(), "Explain Python", keyword, answer)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Score != 0 || res.Feedback != FeedbackTooShort {
				t.Fatalf("answer %q keyword %q: unexpected result %+v", answer, keyword, res)
			}
			if len(sim.calls) != 0 {
				t.Fatalf("similarity must not be called for degenerate answers")
			}
		}
	}
}

func TestAnchorScorerFiveCharactersIsScored(t *testing.T) {
	t.Parallel()

	sim := &fakeSimilarity{value: 0.5}
	res, err := newAnchor(t, sim).Evaluate(context.Background(), "", "Go", " abcde ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 5 || len(sim.calls) != 1 {
		t.Fatalf("unexpected result %+v (calls %d)", res, len(sim.calls))
	}
}

func TestAnchorScorerScores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sim      float64
		keyword  string
		answer   string
		score    int
		feedback string
	}{
		{
			name:     "off topic answer",
			sim:      0.05,
			keyword:  "Python",
			answer:   "I like apples.",
			score:    0,
			feedback: "Needs Improvement. The answer seems vague or off-topic.",
		},
		{
			name:     "relevant answer with keyword",
			sim:      0.62,
			keyword:  "Python",
			answer:   "Python is a versatile programming language used for web development and data science.",
			score:    8,
			feedback: "Excellent! Your answer is relevant and covers the key concepts.",
		},
		{
			name:     "case insensitive keyword bonus",
			sim:      0.31,
			keyword:  "PyThOn",
			answer:   "I write PYTHON daily.",
			score:    5,
			feedback: "Good. You touched on the topic, but more detail would improve the answer.",
		},
		{
			name:     "negative similarity never undercuts the bonus",
			sim:      -0.9,
			keyword:  "rust",
			answer:   "rust is something I heard about",
			score:    2,
			feedback: "Needs Improvement. The answer seems vague or off-topic.",
		},
		{
			name:     "clamped at ten",
			sim:      0.99,
			keyword:  "Go",
			answer:   "Go has goroutines and channels.",
			score:    10,
			feedback: "Excellent! Your answer is relevant and covers the key concepts.",
		},
		{
			name:     "empty keyword earns no bonus",
			sim:      0.45,
			keyword:  "  ",
			answer:   "Some reasonable answer.",
			score:    4,
			feedback: "Needs Improvement. The answer seems vague or off-topic.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := newAnchor(t, &fakeSimilarity{value: tt.sim}).Evaluate(context.Background(), "question", tt.keyword, tt.answer)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Score != tt.score {
				t.Fatalf("expected score %d, got %d", tt.score, res.Score)
			}
			if res.Feedback != tt.feedback {
				t.Fatalf("unexpected feedback: %q", res.Feedback)
			}
		})
	}
}

func TestAnchorScoreBoundaries(t *testing.T) {
	t.Parallel()

	if got := anchorScore(0.8, false); got != 8 {
		t.Fatalf("expected 8, got %v", got)
	}
	if band := anchorBands.Classify(anchorScore(0.8, false)); band.Name != BandExcellent {
		t.Fatalf("score 8 must be excellent, got %s", band.Name)
	}
	if got := anchorScore(0.799, false); got != 7 {
		t.Fatalf("expected 7.99 to floor to 7, got %v", got)
	}
	if band := anchorBands.Classify(anchorScore(0.799, false)); band.Name != BandGood {
		t.Fatalf("7.99 must be good, got %s", band.Name)
	}
	if band := anchorBands.Classify(AnchorGoodMin); band.Name != BandGood {
		t.Fatalf("score 5 must be good, got %s", band.Name)
	}
	if band := anchorBands.Classify(4); band.Name != BandNeedsImprovement {
		t.Fatalf("score 4 must need improvement, got %s", band.Name)
	}
}

func TestAnchorScoreMonotonic(t *testing.T) {
	t.Parallel()

	for _, present := range []bool{false, true} {
		prev := -1.0
		for i := -100; i <= 120; i++ {
			sim := float64(i) / 100
			got := anchorScore(sim, present)
			if got < prev {
				t.Fatalf("score decreased at sim %v (present=%v): %v < %v", sim, present, got, prev)
			}
			if got < 0 || got > AnchorMaxScore || got != float64(int(got)) {
				t.Fatalf("score %v out of range or not integral", got)
			}
			if anchorScore(sim, true) < anchorScore(sim, false) {
				t.Fatalf("keyword presence decreased the score at sim %v", sim)
			}
			prev = got
		}
	}
}

func TestAnchorScorerUsesSyntheticAnchor(t *testing.T) {
	t.Parallel()

	sim := &fakeSimilarity{value: 0.5}
	answer := "Kubernetes schedules containers."
	if _, err := newAnchor(t, sim).Evaluate(context.Background(), "What is Kubernetes?", "Kubernetes", answer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Kubernetes is a key technology/concept. It involves Kubernetes features and implementation details."
	if len(sim.calls) != 1 || sim.calls[0].a != answer || sim.calls[0].b != expected {
		t.Fatalf("unexpected comparison: %+v", sim.calls)
	}
	if AnchorText("Kubernetes") != expected {
		t.Fatalf("unexpected anchor text: %q", AnchorText("Kubernetes"))
	}
}

func TestAnchorScorerPrefersReference(t *testing.T) {
	t.Parallel()

	sim := &fakeSimilarity{value: 0.5}
	req := Request{
		Keyword:   "Docker",
		Answer:    "Containers share the host kernel.",
		Reference: "Docker packages applications in containers sharing the host kernel.",
	}
	res, err := newAnchor(t, sim).Score(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.calls[0].b != req.Reference {
		t.Fatalf("expected reference to be compared, got %q", sim.calls[0].b)
	}
	if res.Score != 5 || res.MaxScore != AnchorMaxScore || res.Strategy != StrategyAnchor {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAnchorScorerQuestionDoesNotChangeScore(t *testing.T) {
	t.Parallel()

	s := newAnchor(t, &fakeSimilarity{fn: func(a, b string) float64 {
		if strings.Contains(b, "question") {
			return 1
		}
		return 0.4
	}})

	first, _ := s.Evaluate(context.Background(), "", "SQL", "SQL joins combine tables.")
	second, _ := s.Evaluate(context.Background(), "A long question about SQL", "SQL", "SQL joins combine tables.")
	if first != second {
		t.Fatalf("question changed the result: %+v vs %+v", first, second)
	}
}

func TestAnchorScorerPropagatesErrors(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("embedding backend timeout")
	_, err := newAnchor(t, &fakeSimilarity{err: backendErr}).Evaluate(context.Background(), "q", "Go", "Go is compiled.")
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestNewAnchorScorerRequiresSimilarity(t *testing.T) {
	t.Parallel()

	_, err := NewAnchorScorer(nil, zap.NewNop(), 0)
	var unavailable *nlp.UnavailableError
	if !errors.As(err, &unavailable) || unavailable.Capability != nlp.CapabilitySimilarity {
		t.Fatalf("expected similarity capability error, got %v", err)
	}
}

func TestAnchorScorerLogsSignals(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	s, err := NewAnchorScorer(&fakeSimilarity{value: 0.75}, zap.New(core), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Evaluate(context.Background(), "q", "Go", "Go has a garbage collector."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("anchor score").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["keyword_present"] != true {
		t.Fatalf("expected keyword_present to be true, got %v", ctx["keyword_present"])
	}
	if ctx["score"] != 9.0 {
		t.Fatalf("expected score 9, got %v", ctx["score"])
	}
	if ctx["answer_preview"] != "Go has a g..." {
		t.Fatalf("unexpected preview: %q", ctx["answer_preview"])
	}
}
