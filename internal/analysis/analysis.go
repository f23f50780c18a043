// Package analysis implements the resume/job-description alignment analyzer:
// per-skill semantic matching, overall alignment statistics, and assembly of
// the structured report.
package analysis

import (
	"context"
	"math"

	"github.com/jonathan/resume-mentor/internal/embedding"
	"github.com/jonathan/resume-mentor/internal/vocab"
)

// DefaultThreshold is the minimum best-match similarity for a skill to count
// as matched.
const DefaultThreshold = 0.6

// Analyzer runs alignment analyses against a similarity oracle and a fixed
// vocabulary. It holds no per-request state and is safe to share.
type Analyzer struct {
	oracle    *embedding.Oracle
	vocab     *vocab.Vocabulary
	threshold float64
}

// New creates an Analyzer. A non-positive threshold selects DefaultThreshold.
func New(oracle *embedding.Oracle, v *vocab.Vocabulary, threshold float64) *Analyzer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Analyzer{
		oracle:    oracle,
		vocab:     v,
		threshold: threshold,
	}
}

// Vocabulary returns the vocabulary the analyzer scans for.
func (a *Analyzer) Vocabulary() *vocab.Vocabulary {
	return a.vocab
}

// round3 rounds to 3 decimal places for presentation stability.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// bestMatch returns the maximum similarity between sentence and any of the
// candidates, or 0 when candidates is empty.
func (a *Analyzer) bestMatch(ctx context.Context, sentence string, candidates []string) (float64, error) {
	best := 0.0
	for _, candidate := range candidates {
		score, err := a.oracle.Similarity(ctx, sentence, candidate)
		if err != nil {
			return 0, err
		}
		if score > best {
			best = score
		}
	}
	return best, nil
}
