// Package types provides type definitions for structured data used throughout the resume-mentor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EducationMatch classifies how the resume education compares to the JD requirement
type EducationMatch string

// EducationMatch values
const (
	// EducationMatched means a detected degree contains the JD requirement
	EducationMatched EducationMatch = "matched"
	// EducationMissing means the JD requires a degree the resume does not show
	EducationMissing EducationMatch = "missing"
	// EducationNotRequired means the JD states no degree requirement
	EducationNotRequired EducationMatch = "not_required"
)

// SkillStatus classifies whether a tracked skill is covered by the resume
type SkillStatus string

// SkillStatus values
const (
	// SkillMatched means the best semantic score met the threshold
	SkillMatched SkillStatus = "matched"
	// SkillMissing means no JD mention or best score below threshold
	SkillMissing SkillStatus = "missing"
)

// MatchType records how a skill match was established
type MatchType string

// MatchType values
const (
	// MatchSemantic means the match came from sentence embedding similarity
	MatchSemantic MatchType = "semantic"
	// MatchNone means no match was established
	MatchNone MatchType = "none"
)

// EducationEntry represents one degree mention found in the resume
type EducationEntry struct {
	Degree   string `json:"degree"`
	Line     string `json:"line"`
	Duration string `json:"duration,omitempty"` // year range like "2018-2022", empty if absent
}

// EducationReport compares resume education against the JD requirement
type EducationReport struct {
	Resume        []EducationEntry `json:"resume"`
	JDRequirement string           `json:"jd_requirement,omitempty"`
	Match         EducationMatch   `json:"match"`
}

// ExperienceReport summarizes experience signals from both documents
type ExperienceReport struct {
	JDRequiredYears *int     `json:"jd_required_years,omitempty"`
	ResumeRoles     []string `json:"resume_roles"`
	ResumeDomains   []string `json:"resume_domains"`
}

// ProjectsReport records whether the resume shows project work
type ProjectsReport struct {
	HasProjects bool `json:"has_projects"`
}

// SkillRecord holds the alignment result for one tracked skill
type SkillRecord struct {
	Status     SkillStatus `json:"status"`
	MatchType  MatchType   `json:"match_type"`
	Similarity float64     `json:"similarity"` // best score, rounded to 3 decimals
}

// SkillsReport maps each tracked skill to its alignment record
type SkillsReport struct {
	SemanticSkillAnalysis map[string]SkillRecord `json:"semantic_skill_analysis"`
}

// AlignmentSummary aggregates per-JD-sentence best-match similarities.
// A nil summary means one of the documents produced no sentences.
type AlignmentSummary struct {
	AverageSimilarity float64 `json:"average_similarity"`
	MinSimilarity     float64 `json:"min_similarity"`
	MaxSimilarity     float64 `json:"max_similarity"`
}

// AnalysisReport is the root aggregate produced by one analysis run.
// It is built once and never mutated afterwards.
type AnalysisReport struct {
	Education         EducationReport   `json:"education"`
	Experience        ExperienceReport  `json:"experience"`
	Projects          ProjectsReport    `json:"projects"`
	Skills            SkillsReport      `json:"skills"`
	Extras            []string          `json:"extras"`
	SemanticAlignment *AlignmentSummary `json:"semantic_alignment,omitempty"`
}

// MissingSkills returns the tracked skills whose status is missing, sorted
// by the order of the given vocabulary slice for stable output.
func (r *AnalysisReport) MissingSkills(order []string) []string {
	var missing []string
	for _, skill := range order {
		if rec, ok := r.Skills.SemanticSkillAnalysis[skill]; ok && rec.Status == SkillMissing {
			missing = append(missing, skill)
		}
	}
	return missing
}
