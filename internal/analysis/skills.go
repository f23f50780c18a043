package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/resume-mentor/internal/parsing"
	"github.com/jonathan/resume-mentor/internal/types"
)

// AnalyzeSkills computes the best semantic match for every tracked skill.
// Only job-description sentences that mention the skill by name qualify; each
// qualifying sentence is compared against every resume sentence and the
// running maximum kept. A skill with no qualifying JD sentence scores 0 and
// is reported missing. The loop is O(skills x jdSentences x resumeSentences)
// oracle calls, which is fine at single-document scale and cheaper in
// practice because the oracle memoizes embeddings.
func (a *Analyzer) AnalyzeSkills(ctx context.Context, jdText, resumeText string) (map[string]types.SkillRecord, error) {
	jdSentences := parsing.Sentences(jdText)
	resumeSentences := parsing.Sentences(resumeText)

	records := make(map[string]types.SkillRecord, len(a.vocab.Skills))

	for _, skill := range a.vocab.Skills {
		best := 0.0

		for _, jdSentence := range jdSentences {
			if !strings.Contains(strings.ToLower(jdSentence), skill) {
				continue
			}
			score, err := a.bestMatch(ctx, jdSentence, resumeSentences)
			if err != nil {
				return nil, err
			}
			if score > best {
				best = score
			}
		}

		record := types.SkillRecord{
			Status:     types.SkillMissing,
			MatchType:  types.MatchNone,
			Similarity: round3(best),
		}
		if best >= a.threshold {
			record.Status = types.SkillMatched
			record.MatchType = types.MatchSemantic
		}
		records[skill] = record
	}

	return records, nil
}
