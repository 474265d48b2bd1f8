package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/answer-scorer/internal/nlp"
)

const (
	defaultModel    = "gemini-embedding-001"
	similarityTask  = "SEMANTIC_SIMILARITY"
	maxBatchedTexts = 100
)

type embedClient interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Embedder produces embeddings with the Gemini API.
type Embedder struct {
	client     embedClient
	model      string
	dimensions int32
	logger     *zap.Logger
}

var _ nlp.Embedder = (*Embedder)(nil)

// Config holds the Gemini embedding settings.
type Config struct {
	APIKey     string
	Model      string
	Dimensions int
}

// NewEmbedder creates a Gemini-backed embedder. Failures are reported as capability errors.
func NewEmbedder(ctx context.Context, cfg Config, logger *zap.Logger) (*Embedder, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, nlp.Unavailable(nlp.CapabilityEmbedding, errors.New("gemini api key is required"))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, nlp.Unavailable(nlp.CapabilityEmbedding, fmt.Errorf("create genai client: %w", err))
	}

	return newEmbedder(client.Models, cfg, logger), nil
}

func newEmbedder(client embedClient, cfg Config, logger *zap.Logger) *Embedder {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Embedder{
		client:     client,
		model:      model,
		dimensions: int32(max(cfg.Dimensions, 0)),
		logger:     logger,
	}
}

// Embed returns one vector per text, in input order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatchedTexts {
		end := min(start+maxBatchedTexts, len(texts))
		vectors, err := e.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, vectors...)
	}

	return out, nil
}

func (e *Embedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: text}},
		}
	}

	cfg := &genai.EmbedContentConfig{TaskType: similarityTask}
	if e.dimensions > 0 {
		dims := e.dimensions
		cfg.OutputDimensionality = &dims
	}

	e.logger.Debug("gemini embed content request",
		zap.String("model", e.model),
		zap.Int("texts", len(texts)),
	)

	resp, err := e.client.EmbedContent(ctx, e.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		got := 0
		if resp != nil {
			got = len(resp.Embeddings)
		}
		return nil, fmt.Errorf("gemini api returned %d embeddings for %d texts", got, len(texts))
	}

	vectors := make([][]float32, len(texts))
	for i, embedding := range resp.Embeddings {
		if embedding == nil || len(embedding.Values) == 0 {
			return nil, fmt.Errorf("gemini api returned empty embedding at index %d", i)
		}
		vectors[i] = embedding.Values
	}

	return vectors, nil
}

func (e *Embedder) ModelID() string {
	if e == nil {
		return ""
	}
	return "gemini/" + e.model
}
