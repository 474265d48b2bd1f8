package nlp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
)

// CachedEmbedder memoizes embeddings in memory for the lifetime of the process.
// Anchor strings and keyword blocks repeat across answers, so most lookups hit.
type CachedEmbedder struct {
	inner Embedder

	mu    sync.RWMutex
	cache map[string][]float32
}

var _ Embedder = (*CachedEmbedder)(nil)

// NewCachedEmbedder wraps inner with an in-memory cache.
func NewCachedEmbedder(inner Embedder) *CachedEmbedder {
	return &CachedEmbedder{
		inner: inner,
		cache: make(map[string][]float32),
	}
}

func (c *CachedEmbedder) ModelID() string {
	return c.inner.ModelID()
}

// Embed returns cached vectors where available and embeds the misses in a single call.
func (c *CachedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	keys := make([]string, len(texts))

	var missing []string
	var missingIdx []int
	for i, text := range texts {
		keys[i] = c.cacheKey(text)
		if vec := c.get(keys[i]); vec != nil {
			out[i] = vec
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return out, nil
	}

	vectors, err := c.inner.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missing) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(missing))
	}

	for j, idx := range missingIdx {
		c.put(keys[idx], vectors[j])
		out[idx] = cloneVector(vectors[j])
	}

	return out, nil
}

// Len reports the number of cached vectors.
func (c *CachedEmbedder) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func (c *CachedEmbedder) cacheKey(text string) string {
	h := sha1.New()
	_, _ = io.WriteString(h, c.inner.ModelID())
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, Normalize(text))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *CachedEmbedder) get(key string) []float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if vec, ok := c.cache[key]; ok {
		return cloneVector(vec)
	}
	return nil
}

func (c *CachedEmbedder) put(key string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cloneVector(vec)
}

func cloneVector(vec []float32) []float32 {
	out := make([]float32, len(vec))
	copy(out, vec)
	return out
}
