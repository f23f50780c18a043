package guidance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-mentor/internal/types"
	"github.com/jonathan/resume-mentor/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned content and records the prompt it was given.
type stubClient struct {
	content    string
	err        error
	lastSystem string
	lastPrompt string
}

func (c *stubClient) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	c.lastSystem = system
	c.lastPrompt = prompt
	return c.content, c.err
}

func (c *stubClient) Close() error { return nil }

func sampleReport() *types.AnalysisReport {
	years := 3
	return &types.AnalysisReport{
		Education: types.EducationReport{
			Resume:        []types.EducationEntry{{Degree: "b.tech", Line: "b.tech 2018-2022", Duration: "2018-2022"}},
			JDRequirement: "b.tech",
			Match:         types.EducationMatched,
		},
		Experience: types.ExperienceReport{
			JDRequiredYears: &years,
			ResumeRoles:     []string{"intern"},
			ResumeDomains:   []string{"machine learning"},
		},
		Projects: types.ProjectsReport{HasProjects: true},
		Skills: types.SkillsReport{
			SemanticSkillAnalysis: map[string]types.SkillRecord{
				"python": {Status: types.SkillMatched, MatchType: types.MatchSemantic, Similarity: 0.91},
				"docker": {Status: types.SkillMissing, MatchType: types.MatchNone, Similarity: 0.0},
			},
		},
		Extras: []string{"hackathon"},
	}
}

func TestGenerate_UsesModelWhenAvailable(t *testing.T) {
	client := &stubClient{content: "Strengths:\nGood python depth.\n\nSkills Gaps:\nNo docker."}
	g := NewGenerator(client, vocab.Default().Skills)

	result := g.Generate(context.Background(), sampleReport())

	assert.Equal(t, types.SourceLLM, result.Source)
	assert.Equal(t, client.content, result.Text)
	assert.Equal(t, []string{"Strengths", "Skills Gaps"}, result.Headings)
	assert.Equal(t, []string{"Good python depth."}, result.Sections["Strengths"])

	// The serialized report is embedded in the prompt.
	assert.Contains(t, client.lastPrompt, `"b.tech"`)
	assert.NotEmpty(t, client.lastSystem)
}

func TestGenerate_NilClientFallsBack(t *testing.T) {
	g := NewGenerator(nil, vocab.Default().Skills)

	result := g.Generate(context.Background(), sampleReport())

	assert.Equal(t, types.SourceRuleBased, result.Source)
	assert.Equal(t, Fallback(sampleReport(), vocab.Default().Skills), result.Text)
}

func TestGenerate_ErrorFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	g := NewGenerator(client, vocab.Default().Skills).WithTimeout(time.Second)

	result := g.Generate(context.Background(), sampleReport())
	assert.Equal(t, types.SourceRuleBased, result.Source)
}

func TestGenerate_BlankContentFallsBack(t *testing.T) {
	client := &stubClient{content: "   \n  "}
	g := NewGenerator(client, vocab.Default().Skills)

	result := g.Generate(context.Background(), sampleReport())
	assert.Equal(t, types.SourceRuleBased, result.Source)
}

func TestFallback_Deterministic(t *testing.T) {
	report := sampleReport()
	order := vocab.Default().Skills

	first := Fallback(report, order)
	second := Fallback(report, order)
	assert.Equal(t, first, second)
}

func TestFallback_PositiveReport(t *testing.T) {
	text := Fallback(sampleReport(), vocab.Default().Skills)

	assert.True(t, strings.HasPrefix(text, "Here is a mentor-style review of your resume:"))
	assert.Contains(t, text, "Strengths:\n")
	assert.Contains(t, text, "- You meet the education requirement mentioned in the job description.")
	assert.Contains(t, text, "- Your resume includes projects, which is a strong positive signal.")
	assert.Contains(t, text, "relevant domains such as machine learning.")

	// docker is missing, so the skills weakness and its suggestion appear.
	assert.Contains(t, text, "Areas To Improve:\n")
	assert.Contains(t, text, "Several important technical skills")
	assert.Contains(t, text, "Suggestions:\n")
	assert.Contains(t, text, "Overall, your profile shows good potential.")
}

func TestFallback_NegativeReport(t *testing.T) {
	report := &types.AnalysisReport{
		Education: types.EducationReport{Match: types.EducationMissing},
		Skills: types.SkillsReport{
			SemanticSkillAnalysis: map[string]types.SkillRecord{
				"python": {Status: types.SkillMissing, MatchType: types.MatchNone},
			},
		},
	}

	text := Fallback(report, []string{"python"})

	assert.NotContains(t, text, "Strengths:")
	assert.Contains(t, text, "- Your education does not clearly match the job requirement.")
	assert.Contains(t, text, "- Your resume does not clearly mention any projects.")
}

func TestFallback_SectionsRoundTrip(t *testing.T) {
	text := Fallback(sampleReport(), vocab.Default().Skills)
	sections, order := ParseSections(text)

	require.NotEmpty(t, order)
	assert.Contains(t, sections, "Strengths")
	assert.Contains(t, sections, "Areas To Improve")
	assert.Contains(t, sections, "Suggestions")
}
