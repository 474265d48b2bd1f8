package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/answer-scorer/internal/nlp"
	"github.com/spigell/answer-scorer/internal/utils"
)

const (
	CoverageMaxScore = 100.0

	// CoverageWeight and SimilarityWeight favour explicit terminology over paraphrase.
	CoverageWeight   = 0.7
	SimilarityWeight = 0.3

	feedbackPrefix = "Relevance Score: %.1f/100. "
)

// CoverageResult is the boundary shape of the coverage strategy.
type CoverageResult struct {
	Score    float64  `json:"score"`
	Feedback string   `json:"feedback"`
	Missing  []string `json:"missing_keywords"`
}

// CoverageScorer measures which expected keywords an answer covers and smooths the result
// with whole-text similarity.
//
// Multi-word keywords contribute one lemma per content word, so they weigh more in the
// coverage ratio than single-word keywords.
type CoverageScorer struct {
	lemmatizer nlp.Lemmatizer
	similarity nlp.Similarity
	logger     *zap.Logger
	maxLogLen  int
}

var _ Scorer = (*CoverageScorer)(nil)

// NewCoverageScorer fails with *nlp.UnavailableError when a capability is missing.
func NewCoverageScorer(lemmatizer nlp.Lemmatizer, similarity nlp.Similarity, logger *zap.Logger, maxLogLength int) (*CoverageScorer, error) {
	if lemmatizer == nil {
		return nil, nlp.Unavailable(nlp.CapabilityLemmatization, fmt.Errorf("coverage scorer requires a lemmatizer"))
	}
	if similarity == nil {
		return nil, nlp.Unavailable(nlp.CapabilitySimilarity, fmt.Errorf("coverage scorer requires a similarity backend"))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &CoverageScorer{
		lemmatizer: lemmatizer,
		similarity: similarity,
		logger:     logger,
		maxLogLen:  maxLogLength,
	}, nil
}

func (s *CoverageScorer) Name() string { return StrategyCoverage }

// Evaluate scores answer against the expected keywords.
func (s *CoverageScorer) Evaluate(ctx context.Context, answer string, keywords []string) (CoverageResult, error) {
	res, err := s.Score(ctx, Request{Answer: answer, Keywords: keywords})
	if err != nil {
		return CoverageResult{}, err
	}
	return CoverageResult{Score: res.Score, Feedback: res.Feedback, Missing: res.Missing}, nil
}

func (s *CoverageScorer) Score(ctx context.Context, req Request) (*Result, error) {
	if blank(req.Answer) {
		s.logger.Debug("empty answer, skipping coverage", zap.String("strategy", StrategyCoverage))
		return &Result{
			Strategy: StrategyCoverage,
			Score:    0,
			MaxScore: CoverageMaxScore,
			Band:     coverageBands.Classify(0).Name,
			Feedback: FeedbackNoAnswer,
			Missing:  []string{},
		}, nil
	}

	answerLemmas, err := s.lemmatizer.Lemmatize(ctx, req.Answer)
	if err != nil {
		return nil, fmt.Errorf("lemmatize answer: %w", err)
	}

	keywordLemmas := nlp.NewLemmaSet()
	for _, keyword := range req.Keywords {
		lemmas, err := s.lemmatizer.Lemmatize(ctx, keyword)
		if err != nil {
			return nil, fmt.Errorf("lemmatize keyword %q: %w", keyword, err)
		}
		keywordLemmas = keywordLemmas.Union(lemmas)
	}

	matched := keywordLemmas.Intersect(answerLemmas)
	missing := keywordLemmas.Difference(matched)

	coverage := 0.0
	if keywordLemmas.Len() > 0 {
		coverage = float64(matched.Len()) / float64(keywordLemmas.Len())
	}

	sim, err := s.similarity.Similarity(ctx, req.Answer, strings.Join(req.Keywords, " "))
	if err != nil {
		return nil, fmt.Errorf("keyword similarity: %w", err)
	}

	score := coverageScore(coverage, sim)
	band := coverageBands.Classify(score)

	s.logger.Debug("coverage score",
		zap.Int("keyword_lemmas", keywordLemmas.Len()),
		zap.Int("matched", matched.Len()),
		zap.Float64("coverage", coverage),
		zap.Float64("similarity", sim),
		zap.Float64("score", score),
		zap.String("band", band.Name),
		zap.Strings("missing", missing.Surfaces()),
		zap.String("answer_preview", utils.TruncateForLog(req.Answer, s.maxLogLen)),
	)

	return &Result{
		Strategy: StrategyCoverage,
		Score:    score,
		MaxScore: CoverageMaxScore,
		Band:     band.Name,
		Feedback: fmt.Sprintf(feedbackPrefix, score) + band.Feedback,
		Missing:  missing.Surfaces(),
	}, nil
}

// coverageScore blends coverage (0-1) and similarity (-1..1) into [0, 100].
func coverageScore(coverage, sim float64) float64 {
	if math.IsNaN(sim) || sim < 0 {
		sim = 0
	}
	similarityScaled := sim * CoverageMaxScore
	return clamp(CoverageWeight*(coverage*CoverageMaxScore)+SimilarityWeight*similarityScaled, 0, CoverageMaxScore)
}
