package embedding

import (
	"context"
	"sync"
)

// Oracle computes semantic similarity between text spans via an Embedder.
// Embeddings are memoized for the lifetime of the Oracle, which keeps the
// skills-by-sentences loop affordable and makes repeated runs over the same
// inputs bit-identical. Safe for concurrent use.
type Oracle struct {
	embedder Embedder

	mu    sync.Mutex
	cache map[string][]float32
}

// NewOracle creates an Oracle backed by the given embedder.
func NewOracle(embedder Embedder) *Oracle {
	return &Oracle{
		embedder: embedder,
		cache:    make(map[string][]float32),
	}
}

// Similarity returns the cosine similarity of the embeddings of a and b.
// Symmetric: Similarity(a, b) == Similarity(b, a).
func (o *Oracle) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := o.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := o.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return Cosine(va, vb), nil
}

func (o *Oracle) embed(ctx context.Context, text string) ([]float32, error) {
	o.mu.Lock()
	if v, ok := o.cache[text]; ok {
		o.mu.Unlock()
		return v, nil
	}
	o.mu.Unlock()

	v, err := o.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.cache[text] = v
	o.mu.Unlock()

	return v, nil
}
