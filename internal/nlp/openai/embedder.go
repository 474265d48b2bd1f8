package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/spigell/answer-scorer/internal/nlp"
)

const defaultModel = "text-embedding-3-small"

// Config holds the settings of an OpenAI-compatible embeddings endpoint
// (OpenAI itself, Ollama, LM Studio, vLLM).
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type embeddingsClient interface {
	CreateEmbeddings(ctx context.Context, conv goopenai.EmbeddingRequestConverter) (goopenai.EmbeddingResponse, error)
}

// Embedder produces embeddings through the /v1/embeddings API.
type Embedder struct {
	client embeddingsClient
	model  string
	logger *zap.Logger
}

var _ nlp.Embedder = (*Embedder)(nil)

// NewEmbedder creates an embedder. Local servers usually ignore the key; the official API
// needs one, so an empty key is only accepted together with a custom base URL.
func NewEmbedder(cfg Config, logger *zap.Logger) (*Embedder, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" && baseURL == "" {
		return nil, nlp.Unavailable(nlp.CapabilityEmbedding, errors.New("openai api key is required when no base url is configured"))
	}

	clientCfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL += "/v1"
		}
		clientCfg.BaseURL = baseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Embedder{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  model,
		logger: logger,
	}, nil
}

// Embed returns one vector per text, in input order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("openai embedder is not initialized")
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	e.logger.Debug("openai embeddings request",
		zap.String("model", e.model),
		zap.Int("texts", len(texts)),
	)

	resp, err := e.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
		Input: texts,
		Model: goopenai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai api returned %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	data := append([]goopenai.Embedding(nil), resp.Data...)
	sort.SliceStable(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([][]float32, len(data))
	for i, item := range data {
		if len(item.Embedding) == 0 {
			return nil, fmt.Errorf("openai api returned empty embedding at index %d", i)
		}
		vectors[i] = item.Embedding
	}

	return vectors, nil
}

func (e *Embedder) ModelID() string {
	if e == nil {
		return ""
	}
	return "openai/" + e.model
}
