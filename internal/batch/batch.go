package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/answer-scorer/internal/scoring"
)

const defaultConcurrency = 4

// Record is one answer to score, as supplied by the question collaborator plus the answer.
type Record struct {
	ID        string   `json:"id" mapstructure:"id"`
	Question  string   `json:"question" mapstructure:"question"`
	Keyword   string   `json:"keyword,omitempty" mapstructure:"keyword"`
	Keywords  []string `json:"keywords,omitempty" mapstructure:"keywords"`
	Answer    string   `json:"answer" mapstructure:"answer"`
	Reference string   `json:"reference,omitempty" mapstructure:"reference"`
}

// Request converts the record into a scoring request.
func (r Record) Request() scoring.Request {
	return scoring.Request{
		Question:  r.Question,
		Answer:    r.Answer,
		Keyword:   r.Keyword,
		Keywords:  r.Keywords,
		Reference: r.Reference,
	}
}

// Outcome pairs a record with its result or the error that prevented scoring.
type Outcome struct {
	ID     string          `json:"id"`
	Result *scoring.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// DecodeRecords converts loosely typed items (decoded JSON or YAML) into records.
// A single string under "keywords" is accepted as a one-element list. Records without an
// id get a random one.
func DecodeRecords(items []map[string]any) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for i, item := range items {
		var record Record
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &record,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		record.ID = strings.TrimSpace(record.ID)
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		records = append(records, record)
	}
	return records, nil
}

// Runner scores records concurrently with a shared scorer.
type Runner struct {
	Scorer      scoring.Scorer
	Concurrency int
	Logger      *zap.Logger
}

// Run scores every record and returns outcomes in input order. A failing record is reported in
// its outcome; only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, records []Record) ([]Outcome, error) {
	if r.Scorer == nil {
		return nil, fmt.Errorf("scorer is required")
	}

	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := r.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	outcomes := make([]Outcome, len(records))
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, record := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcomes[i].ID = record.ID
			res, err := r.Scorer.Score(gctx, record.Request())
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("scoring failed",
					zap.String("record_id", record.ID),
					zap.Error(err),
				)
				outcomes[i].Error = err.Error()
				return nil
			}

			outcomes[i].Result = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	failed := 0
	for _, o := range outcomes {
		if o.Error != "" {
			failed++
		}
	}

	logger.Info("batch scored",
		zap.String("strategy", r.Scorer.Name()),
		zap.Int("records", len(records)),
		zap.Int("failed", failed),
		zap.Int("concurrency", limit),
		zap.Duration("took", time.Since(started)),
	)

	return outcomes, nil
}
