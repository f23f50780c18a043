package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-mentor/internal/embedding"
	"github.com/jonathan/resume-mentor/internal/types"
	"github.com/jonathan/resume-mentor/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vectorEmbedder returns a fixed vector per exact sentence. Unknown sentences
// get the zero vector, which scores 0 against everything.
type vectorEmbedder struct {
	vectors map[string][]float32
}

func (e *vectorEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return make([]float32, 4), nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("embedding backend unavailable")
}

// fixture pairs a JD and resume whose sentence similarities are pinned:
// the python sentences are identical in vector space (1.0) and the java
// sentences sit at exactly 0.5.
const (
	fixtureJD     = "We need python daily. Java experience preferred."
	fixtureResume = "I used python at work. Dabbled in java once."
)

func fixtureOracle() *embedding.Oracle {
	return embedding.NewOracle(&vectorEmbedder{vectors: map[string][]float32{
		"We need python daily.":      {1, 0, 0, 0},
		"Java experience preferred.": {0, 1, 0, 0},
		"I used python at work.":     {1, 0, 0, 0},
		"Dabbled in java once.":      {0, 1, 1.7320508, 0},
	}})
}

func TestAnalyzeSkills(t *testing.T) {
	a := New(fixtureOracle(), vocab.Default(), 0)

	records, err := a.AnalyzeSkills(context.Background(), fixtureJD, fixtureResume)
	require.NoError(t, err)

	// Every tracked skill gets a record, mentioned in the JD or not.
	assert.Len(t, records, len(vocab.Default().Skills))

	python := records["python"]
	assert.Equal(t, types.SkillMatched, python.Status)
	assert.Equal(t, types.MatchSemantic, python.MatchType)
	assert.InDelta(t, 1.0, python.Similarity, 0.001)

	// Best java match scores 0.5, below the 0.6 threshold.
	java := records["java"]
	assert.Equal(t, types.SkillMissing, java.Status)
	assert.Equal(t, types.MatchNone, java.MatchType)
	assert.InDelta(t, 0.5, java.Similarity, 0.001)

	// Never mentioned in the JD: missing with zero similarity.
	sql := records["sql"]
	assert.Equal(t, types.SkillMissing, sql.Status)
	assert.Equal(t, types.MatchNone, sql.MatchType)
	assert.Zero(t, sql.Similarity)
}

func TestAnalyzeSkills_CustomThreshold(t *testing.T) {
	a := New(fixtureOracle(), vocab.Default(), 0.4)

	records, err := a.AnalyzeSkills(context.Background(), fixtureJD, fixtureResume)
	require.NoError(t, err)

	java := records["java"]
	assert.Equal(t, types.SkillMatched, java.Status)
	assert.Equal(t, types.MatchSemantic, java.MatchType)
}

func TestAnalyzeSkills_EmbedderFailure(t *testing.T) {
	a := New(embedding.NewOracle(failingEmbedder{}), vocab.Default(), 0)

	_, err := a.AnalyzeSkills(context.Background(), fixtureJD, fixtureResume)
	assert.Error(t, err)
}

func TestOverallAlignment(t *testing.T) {
	a := New(fixtureOracle(), vocab.Default(), 0)

	summary, err := a.OverallAlignment(context.Background(), fixtureJD, fixtureResume)
	require.NoError(t, err)
	require.NotNil(t, summary)

	// Per-JD-sentence bests are 1.0 (python) and 0.5 (java).
	assert.InDelta(t, 0.75, summary.AverageSimilarity, 0.001)
	assert.InDelta(t, 0.5, summary.MinSimilarity, 0.001)
	assert.InDelta(t, 1.0, summary.MaxSimilarity, 0.001)
}

func TestOverallAlignment_NoSentences(t *testing.T) {
	a := New(fixtureOracle(), vocab.Default(), 0)

	summary, err := a.OverallAlignment(context.Background(), "", fixtureResume)
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = a.OverallAlignment(context.Background(), fixtureJD, "   \n ")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestNew_ThresholdDefault(t *testing.T) {
	a := New(fixtureOracle(), vocab.Default(), 0)
	assert.Equal(t, DefaultThreshold, a.threshold)

	a = New(fixtureOracle(), vocab.Default(), -1)
	assert.Equal(t, DefaultThreshold, a.threshold)

	a = New(fixtureOracle(), vocab.Default(), 0.8)
	assert.Equal(t, 0.8, a.threshold)
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.707, round3(0.70710678))
	assert.Equal(t, 0.5, round3(0.4999999))
	assert.Equal(t, 1.0, round3(1.0))
	assert.Equal(t, 0.0, round3(0.0))
}
