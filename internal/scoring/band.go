package scoring

// Band thresholds. Anchor bands use inclusive lower bounds, coverage bands strict ones.
const (
	AnchorExcellentMin = 8.0
	AnchorGoodMin      = 5.0

	CoverageExcellentAbove = 80.0
	CoverageGoodAbove      = 50.0
)

const (
	BandExcellent        = "excellent"
	BandGood             = "good"
	BandNeedsImprovement = "needs_improvement"
)

// Band is a named score interval. A score belongs to the band when it is at or above
// Lower (Inclusive) or strictly above Lower.
type Band struct {
	Name      string
	Lower     float64
	Inclusive bool
	Feedback  string
}

func (b Band) contains(score float64) bool {
	if b.Inclusive {
		return score >= b.Lower
	}
	return score > b.Lower
}

// Bands is ordered from the highest band down. The last band is the catch-all.
type Bands []Band

// Classify returns the first band the score belongs to, or the last band.
func (bs Bands) Classify(score float64) Band {
	for _, b := range bs[:len(bs)-1] {
		if b.contains(score) {
			return b
		}
	}
	return bs[len(bs)-1]
}

var anchorBands = Bands{
	{
		Name:      BandExcellent,
		Lower:     AnchorExcellentMin,
		Inclusive: true,
		Feedback:  "Excellent! Your answer is relevant and covers the key concepts.",
	},
	{
		Name:      BandGood,
		Lower:     AnchorGoodMin,
		Inclusive: true,
		Feedback:  "Good. You touched on the topic, but more detail would improve the answer.",
	},
	{
		Name:      BandNeedsImprovement,
		Lower:     0,
		Inclusive: true,
		Feedback:  "Needs Improvement. The answer seems vague or off-topic.",
	},
}

var coverageBands = Bands{
	{
		Name:     BandExcellent,
		Lower:    CoverageExcellentAbove,
		Feedback: "Excellent answer! You covered the key concepts.",
	},
	{
		Name:     BandGood,
		Lower:    CoverageGoodAbove,
		Feedback: "Good attempt. Try to include more specific terminology.",
	},
	{
		Name:      BandNeedsImprovement,
		Lower:     0,
		Inclusive: true,
		Feedback:  "Your answer seems a bit off or too brief.",
	},
}

// AnchorBands returns a copy of the bands used by AnchorScorer.
func AnchorBands() Bands { return append(Bands(nil), anchorBands...) }

// CoverageBands returns a copy of the bands used by CoverageScorer.
func CoverageBands() Bands { return append(Bands(nil), coverageBands...) }
