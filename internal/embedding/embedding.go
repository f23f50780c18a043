// Package embedding provides the semantic similarity oracle used by the
// alignment analyzer. The oracle is pluggable: any Embedder that maps a text
// span to a dense vector can back it, so tests can substitute a deterministic
// implementation for the remote model.
package embedding

import (
	"context"
	"math"
)

// Embedder maps a text span to a dense vector representation.
type Embedder interface {
	// Embed returns the vector encoding of text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
