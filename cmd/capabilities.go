package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/answer-scorer/internal/logger"
	"github.com/spigell/answer-scorer/internal/nlp"
	"github.com/spigell/answer-scorer/internal/nlp/gemini"
	"github.com/spigell/answer-scorer/internal/nlp/lemma"
	"github.com/spigell/answer-scorer/internal/nlp/openai"
	"github.com/spigell/answer-scorer/internal/scoring"
	"github.com/spigell/answer-scorer/internal/secrets"

	"go.uber.org/zap"
)

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"

	geminiKeyEnv = "GEMINI_API_KEY"
	openaiKeyEnv = "OPENAI_API_KEY"
)

// newScorer builds the capabilities once and returns the scorer for the requested strategy.
func newScorer(ctx context.Context, config *Config, log *zap.Logger) (scoring.Scorer, error) {
	strategy, err := scoring.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}

	embedder, provider, err := newEmbedder(ctx, config.Embedder, log)
	if err != nil {
		return nil, fmt.Errorf("building embedder: %w", err)
	}

	similarity, err := nlp.NewEmbeddingSimilarity(embedder)
	if err != nil {
		return nil, err
	}

	scorerLogger := logger.WithCommonFields(log, strategy, provider, embedder.ModelID())

	switch strategy {
	case scoring.StrategyCoverage:
		lemmatizer, err := lemma.New()
		if err != nil {
			return nil, err
		}
		return scoring.NewCoverageScorer(lemmatizer, similarity, scorerLogger, config.Log.MaxLength)
	default:
		return scoring.NewAnchorScorer(similarity, scorerLogger, config.Log.MaxLength)
	}
}

func newEmbedder(ctx context.Context, cfg *EmbedderConfig, log *zap.Logger) (nlp.Embedder, string, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" {
		provider = providerGemini
	}

	var (
		embedder nlp.Embedder
		err      error
	)

	switch provider {
	case providerGemini:
		embedder, err = newGeminiEmbedder(ctx, cfg.Gemini, log)
	case providerOpenAI:
		embedder, err = newOpenAIEmbedder(cfg.OpenAI, log)
	default:
		return nil, "", fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, "", err
	}

	if cfg.Cache {
		embedder = nlp.NewCachedEmbedder(embedder)
	}

	log.Debug("embedder ready",
		zap.String(logger.FieldProvider, provider),
		zap.String(logger.FieldModel, embedder.ModelID()),
		zap.Bool("cache", cfg.Cache),
	)

	return embedder, provider, nil
}

func newGeminiEmbedder(ctx context.Context, cfg *GeminiConfig, log *zap.Logger) (nlp.Embedder, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
		Env:   geminiKeyEnv,
	})
	if err != nil {
		return nil, nlp.Unavailable(nlp.CapabilityEmbedding,
			fmt.Errorf("%w (set embedder.gemini.api-key-file or %s)", err, geminiKeyEnv))
	}

	return gemini.NewEmbedder(ctx, gemini.Config{
		APIKey:     apiKey,
		Model:      cfg.Model,
		Dimensions: cfg.Dimensions,
	}, log)
}

func newOpenAIEmbedder(cfg *OpenAIConfig, log *zap.Logger) (nlp.Embedder, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "openai api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
		Env:   openaiKeyEnv,
	})
	// Local OpenAI-compatible servers run without a key. A configured but unreadable key file
	// is still an error.
	if err != nil && (strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKeyFile) != "") {
		return nil, nlp.Unavailable(nlp.CapabilityEmbedding,
			fmt.Errorf("%w (set embedder.openai.api-key-file or %s)", err, openaiKeyEnv))
	}

	return openai.NewEmbedder(openai.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  apiKey,
		Model:   cfg.Model,
	}, log)
}
