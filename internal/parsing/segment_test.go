package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences_EmptyInput(t *testing.T) {
	assert.Empty(t, Sentences(""))
	assert.Empty(t, Sentences("   \n\t  "))
}

func TestSentences_SingleSentence(t *testing.T) {
	sentences := Sentences("I built a recommendation engine in Python.")
	require.Len(t, sentences, 1)
	assert.Equal(t, "I built a recommendation engine in Python.", sentences[0])
}

func TestSentences_MultipleSentences(t *testing.T) {
	sentences := Sentences("I built a project using python and sql. B.Tech 2018-2022.")
	require.Len(t, sentences, 2)
	assert.Equal(t, "I built a project using python and sql.", sentences[0])
	assert.Equal(t, "B.Tech 2018-2022.", sentences[1])
}

func TestSentences_AbbreviationsDoNotSplit(t *testing.T) {
	sentences := Sentences("Worked at Acme Inc. since 2020 building data pipelines.")
	require.Len(t, sentences, 1)

	sentences = Sentences("Skilled in several tools, e.g. Docker and Git, used daily.")
	require.Len(t, sentences, 1)
}

func TestSentences_InitialismDoesNotSplit(t *testing.T) {
	// The periods inside "B. Tech" must not end the sentence.
	sentences := Sentences("Completed a B. Tech degree in computer science.")
	require.Len(t, sentences, 1)
}

func TestSentences_DecimalsDoNotSplit(t *testing.T) {
	sentences := Sentences("Improved model accuracy by 3.5 percent over the baseline.")
	require.Len(t, sentences, 1)
}

func TestSentences_NewlinesAreBoundaries(t *testing.T) {
	sentences := Sentences("Built a REST API in Go\nDeployed services with Docker")
	require.Len(t, sentences, 2)
	assert.Equal(t, "Built a REST API in Go", sentences[0])
	assert.Equal(t, "Deployed services with Docker", sentences[1])
}

func TestSentences_ShortFragmentsDropped(t *testing.T) {
	// Bullet markers and tiny fragments are noise.
	sentences := Sentences("•\n-\nOk.\nBuilt scalable backend services for payments.")
	require.Len(t, sentences, 1)
	assert.Contains(t, sentences[0], "scalable backend")
}

func TestSentences_NeverShorterThanMinimum(t *testing.T) {
	inputs := []string{
		"a. b. c. d.",
		"Hi. Ok. No.",
		"One two three. Go!",
		"word\nx\nyz\nlonger sentence here.",
	}
	for _, input := range inputs {
		for _, s := range Sentences(input) {
			assert.GreaterOrEqual(t, len([]rune(strings.TrimSpace(s))), minSentenceRunes,
				"input %q produced too-short sentence %q", input, s)
		}
	}
}

func TestSentences_StableOrder(t *testing.T) {
	text := "First point about python. Second point about sql. Third point about docker."
	first := Sentences(text)
	second := Sentences(text)
	assert.Equal(t, first, second)
}
