package nlp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// EmbeddingSimilarity measures cosine similarity between embeddings of two texts.
type EmbeddingSimilarity struct {
	embedder Embedder
}

var _ Similarity = (*EmbeddingSimilarity)(nil)

// NewEmbeddingSimilarity wraps the embedder. A nil embedder is a fatal configuration error.
func NewEmbeddingSimilarity(embedder Embedder) (*EmbeddingSimilarity, error) {
	if embedder == nil {
		return nil, Unavailable(CapabilityEmbedding, errors.New("embedder is not configured"))
	}
	return &EmbeddingSimilarity{embedder: embedder}, nil
}

// Similarity embeds both texts in one call. A blank text has no direction and compares as 0.
func (s *EmbeddingSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	vectors, err := s.embedder.Embed(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("embed texts: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("embedder %s returned %d vectors for 2 texts", s.embedder.ModelID(), len(vectors))
	}
	if len(vectors[0]) != len(vectors[1]) {
		return 0, fmt.Errorf("embedding dimensions differ: %d != %d", len(vectors[0]), len(vectors[1]))
	}

	return Cosine(vectors[0], vectors[1]), nil
}

// ModelID reports the model behind the similarity.
func (s *EmbeddingSimilarity) ModelID() string {
	return s.embedder.ModelID()
}

// Cosine returns the cosine similarity of two vectors, accumulating in float64.
// Zero vectors and vectors of different length compare as 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		af, bf := float64(a[i]), float64(b[i])
		dot += af * bf
		na += af * af
		nb += bf * bf
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
