package analysis

import (
	"context"

	"github.com/jonathan/resume-mentor/internal/parsing"
	"github.com/jonathan/resume-mentor/internal/types"
)

// OverallAlignment scores every job-description sentence by its best-matching
// resume sentence and aggregates the scores to average/min/max. When either
// document yields no sentences there is nothing to aggregate and the summary
// is nil; callers report the alignment as absent rather than failing.
func (a *Analyzer) OverallAlignment(ctx context.Context, jdText, resumeText string) (*types.AlignmentSummary, error) {
	jdSentences := parsing.Sentences(jdText)
	resumeSentences := parsing.Sentences(resumeText)

	if len(jdSentences) == 0 || len(resumeSentences) == 0 {
		return nil, nil
	}

	sum := 0.0
	minScore := 0.0
	maxScore := 0.0

	for i, jdSentence := range jdSentences {
		best, err := a.bestMatch(ctx, jdSentence, resumeSentences)
		if err != nil {
			return nil, err
		}

		sum += best
		if i == 0 || best < minScore {
			minScore = best
		}
		if best > maxScore {
			maxScore = best
		}
	}

	return &types.AlignmentSummary{
		AverageSimilarity: round3(sum / float64(len(jdSentences))),
		MinSimilarity:     round3(minScore),
		MaxSimilarity:     round3(maxScore),
	}, nil
}
