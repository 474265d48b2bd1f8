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
	AnchorMaxScore = 10.0
	// AnchorSimilarityScale maps a cosine similarity onto the 0-10 range.
	AnchorSimilarityScale = 10.0
	// AnchorKeywordBonus is added when the keyword literally appears in the answer.
	AnchorKeywordBonus = 2.0

	anchorTemplate = "%[1]s is a key technology/concept. It involves %[1]s features and implementation details."

	defaultMaxLogLength = 200
)

// AnchorResult is the boundary shape of the anchor strategy.
type AnchorResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// AnchorScorer compares the answer with a synthetic ideal answer built from one keyword and
// rewards answers that mention the keyword literally.
type AnchorScorer struct {
	similarity nlp.Similarity
	logger     *zap.Logger
	maxLogLen  int
}

var _ Scorer = (*AnchorScorer)(nil)

// NewAnchorScorer fails with *nlp.UnavailableError when no similarity capability is given.
func NewAnchorScorer(similarity nlp.Similarity, logger *zap.Logger, maxLogLength int) (*AnchorScorer, error) {
	if similarity == nil {
		return nil, nlp.Unavailable(nlp.CapabilitySimilarity, fmt.Errorf("anchor scorer requires a similarity backend"))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &AnchorScorer{
		similarity: similarity,
		logger:     logger,
		maxLogLen:  maxLogLength,
	}, nil
}

func (s *AnchorScorer) Name() string { return StrategyAnchor }

// AnchorText builds the synthetic ideal answer for a keyword.
func AnchorText(keyword string) string {
	return fmt.Sprintf(anchorTemplate, keyword)
}

// Evaluate scores answer against keyword. The question is accepted for context only and does
// not influence the score.
func (s *AnchorScorer) Evaluate(ctx context.Context, question, keyword, answer string) (AnchorResult, error) {
	res, err := s.Score(ctx, Request{Question: question, Keyword: keyword, Answer: answer})
	if err != nil {
		return AnchorResult{}, err
	}
	return AnchorResult{Score: int(res.Score), Feedback: res.Feedback}, nil
}

func (s *AnchorScorer) Score(ctx context.Context, req Request) (*Result, error) {
	if tooShort(req.Answer) {
		s.logger.Debug("answer too short, skipping similarity",
			zap.String("strategy", StrategyAnchor),
			zap.String("answer_preview", utils.TruncateForLog(req.Answer, s.maxLogLen)),
		)
		return &Result{
			Strategy: StrategyAnchor,
			Score:    0,
			MaxScore: AnchorMaxScore,
			Band:     anchorBands.Classify(0).Name,
			Feedback: FeedbackTooShort,
		}, nil
	}

	anchor := strings.TrimSpace(req.Reference)
	if anchor == "" {
		anchor = AnchorText(req.Keyword)
	}

	sim, err := s.similarity.Similarity(ctx, req.Answer, anchor)
	if err != nil {
		return nil, fmt.Errorf("anchor similarity: %w", err)
	}

	present := keywordPresent(req.Answer, req.Keyword)
	score := anchorScore(sim, present)
	band := anchorBands.Classify(score)

	s.logger.Debug("anchor score",
		zap.String("keyword", req.Keyword),
		zap.Bool("reference_supplied", strings.TrimSpace(req.Reference) != ""),
		zap.Float64("similarity", sim),
		zap.Bool("keyword_present", present),
		zap.Float64("score", score),
		zap.String("band", band.Name),
		zap.String("answer_preview", utils.TruncateForLog(req.Answer, s.maxLogLen)),
	)

	return &Result{
		Strategy: StrategyAnchor,
		Score:    score,
		MaxScore: AnchorMaxScore,
		Band:     band.Name,
		Feedback: band.Feedback,
	}, nil
}

// anchorScore blends similarity and the literal bonus, clamps to [0, 10], then floors.
// Negative or undefined similarity counts as none.
func anchorScore(sim float64, keywordPresent bool) float64 {
	if math.IsNaN(sim) || sim < 0 {
		sim = 0
	}
	raw := sim * AnchorSimilarityScale
	if keywordPresent {
		raw += AnchorKeywordBonus
	}
	return math.Floor(clamp(raw, 0, AnchorMaxScore))
}

func keywordPresent(answer, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false
	}
	return strings.Contains(strings.ToLower(answer), strings.ToLower(keyword))
}
