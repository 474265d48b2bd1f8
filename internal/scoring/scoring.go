// Package scoring grades free-text answers against an expected topic.
//
// Two independent strategies are provided: AnchorScorer compares the answer with a single
// topic keyword, CoverageScorer checks which expected keywords the answer covers. Both are
// pure functions of their inputs and the injected read-only capabilities, so one scorer may
// serve concurrent calls.
package scoring

import (
	"context"
	"fmt"
	"strings"
)

const (
	StrategyAnchor   = "anchor"
	StrategyCoverage = "coverage"
)

// Scorer scores one answer.
type Scorer interface {
	Name() string
	Score(ctx context.Context, req Request) (*Result, error)
}

// Request carries the answer and the topic metadata. AnchorScorer reads Keyword,
// CoverageScorer reads Keywords.
type Request struct {
	Question string
	Answer   string
	Keyword  string
	Keywords []string
	// Reference is an optional real reference answer used by AnchorScorer in place of the
	// synthetic anchor.
	Reference string
}

// Result is the outcome of a scoring call.
type Result struct {
	Strategy string   `json:"strategy"`
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Band     string   `json:"band"`
	Feedback string   `json:"feedback"`
	Missing  []string `json:"missing_keywords,omitempty"`
}

// Names lists the available strategies.
func Names() []string {
	return []string{StrategyAnchor, StrategyCoverage}
}

// ParseStrategy normalizes a strategy name, defaulting to the anchor strategy.
func ParseStrategy(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyAnchor:
		return StrategyAnchor, nil
	case StrategyCoverage:
		return StrategyCoverage, nil
	default:
		return "", fmt.Errorf("unknown scoring strategy %q (expected one of %s)", name, strings.Join(Names(), ", "))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
