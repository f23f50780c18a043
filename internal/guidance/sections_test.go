package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections_TwoSections(t *testing.T) {
	text := "Strengths:\nYou know python.\n\nSkills Gaps:\nNo ML experience."

	sections, order := ParseSections(text)

	assert.Equal(t, []string{"Strengths", "Skills Gaps"}, order)
	assert.Equal(t, []string{"You know python."}, sections["Strengths"])
	assert.Equal(t, []string{"No ML experience."}, sections["Skills Gaps"])
}

func TestParseSections_IntroBeforeFirstHeading(t *testing.T) {
	text := "A quick overview.\n\nStrengths:\nSolid fundamentals."

	sections, order := ParseSections(text)

	require.Equal(t, []string{IntroHeading, "Strengths"}, order)
	assert.Equal(t, []string{"A quick overview."}, sections[IntroHeading])
	assert.Equal(t, []string{"Solid fundamentals."}, sections["Strengths"])
}

func TestParseSections_NoHeadings(t *testing.T) {
	sections, order := ParseSections("Just some plain feedback without structure.")

	require.Equal(t, []string{IntroHeading}, order)
	assert.Equal(t, []string{"Just some plain feedback without structure."}, sections[IntroHeading])
}

func TestParseSections_Empty(t *testing.T) {
	sections, order := ParseSections("   \n\n  ")
	assert.Empty(t, sections)
	assert.Empty(t, order)
}

func TestParseSections_MultipleParagraphsPerSection(t *testing.T) {
	text := "Suggestions:\n- Mention docker.\n- Quantify results.\n\n- Add a summary."

	sections, _ := ParseSections(text)

	assert.Equal(t,
		[]string{"- Mention docker.", "- Quantify results.", "- Add a summary."},
		sections["Suggestions"])
}

func TestParseSections_DuplicateHeadingOverwrites(t *testing.T) {
	text := "Strengths:\nFirst version.\n\nStrengths:\nSecond version."

	sections, order := ParseSections(text)

	// The later body wins; the heading keeps its original position.
	assert.Equal(t, []string{"Strengths"}, order)
	assert.Equal(t, []string{"Second version."}, sections["Strengths"])
}

func TestParseSections_BlankRunsCollapse(t *testing.T) {
	text := "Strengths:\n\n\n\nStill attributed here."

	sections, _ := ParseSections(text)
	assert.Equal(t, []string{"Still attributed here."}, sections["Strengths"])
}

func TestParseSections_HeadingMatchingIsLoose(t *testing.T) {
	// The heading pattern spans letters and whitespace only, so a colon at
	// the end of a plain sentence promotes its trailing words to a heading.
	text := "Consider the following:\nDo the thing."

	sections, order := ParseSections(text)
	require.Equal(t, []string{"Consider the following"}, order)
	assert.Equal(t, []string{"Do the thing."}, sections["Consider the following"])
}
