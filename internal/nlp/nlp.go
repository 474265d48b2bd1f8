package nlp

import (
	"context"
	"fmt"
)

const (
	CapabilityEmbedding     = "embedding"
	CapabilitySimilarity    = "similarity"
	CapabilityLemmatization = "lemmatization"
)

// Embedder turns texts into vectors. Implementations must be safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	ModelID() string
}

// Similarity compares two texts semantically. The result is a cosine similarity in [-1, 1].
type Similarity interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Lemmatizer reduces a text to its set of content-word lemmas.
type Lemmatizer interface {
	Lemmatize(ctx context.Context, text string) (LemmaSet, error)
}

// UnavailableError reports a capability that could not be constructed or loaded.
type UnavailableError struct {
	Capability string
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s capability unavailable: %v", e.Capability, e.Err)
	}
	return fmt.Sprintf("%s capability unavailable", e.Capability)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Unavailable is a shorthand for building an *UnavailableError.
func Unavailable(capability string, err error) error {
	return &UnavailableError{Capability: capability, Err: err}
}
