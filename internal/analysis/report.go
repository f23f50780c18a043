package analysis

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-mentor/internal/extract"
	"github.com/jonathan/resume-mentor/internal/types"
)

// Run performs a full alignment analysis and assembles the report. Pure
// composition over the extractors and the semantic engines; if any sub-result
// cannot be produced the whole run fails, so a returned report is always
// complete. Missing evidence (no sentences, no keyword hits) is represented
// as empty values, never as an error.
func (a *Analyzer) Run(ctx context.Context, jdText, resumeText string) (*types.AnalysisReport, error) {
	educationEntries := extract.Education(resumeText, a.vocab)
	jdRequirement := extract.JDEducationRequirement(jdText, a.vocab)

	skillRecords, err := a.AnalyzeSkills(ctx, jdText, resumeText)
	if err != nil {
		return nil, fmt.Errorf("skill analysis failed: %w", err)
	}

	alignment, err := a.OverallAlignment(ctx, jdText, resumeText)
	if err != nil {
		return nil, fmt.Errorf("alignment aggregation failed: %w", err)
	}

	report := &types.AnalysisReport{
		Education: types.EducationReport{
			Resume:        educationEntries,
			JDRequirement: jdRequirement,
			Match:         extract.MatchEducation(educationEntries, jdRequirement),
		},
		Experience: types.ExperienceReport{
			ResumeRoles:   extract.Roles(resumeText, a.vocab),
			ResumeDomains: extract.Domains(resumeText, a.vocab),
		},
		Projects: types.ProjectsReport{
			HasProjects: extract.HasProjects(resumeText, a.vocab),
		},
		Skills: types.SkillsReport{
			SemanticSkillAnalysis: skillRecords,
		},
		Extras:            extract.Extras(resumeText, a.vocab),
		SemanticAlignment: alignment,
	}

	if years, ok := extract.RequiredYears(jdText); ok {
		report.Experience.JDRequiredYears = &years
	}

	return report, nil
}
