// Package extract provides the lexical extractors that pull education,
// experience, and activity signals out of document text. Every extractor is a
// pure function over one document plus the fixed vocabulary: lowercased,
// substring-based, no stemming. A keyword appearing in more than one output
// field is accepted duplication, not an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-mentor/internal/types"
	"github.com/jonathan/resume-mentor/internal/vocab"
)

// yearRangePattern matches a study duration like "2018-2022" or "2018 – 2022".
var yearRangePattern = regexp.MustCompile(`(19|20)\d{2}\s*[-–]\s*(19|20)\d{2}`)

// Education scans each resume line for degree keywords. A line containing a
// degree yields one entry per matching keyword, with the optional year range
// captured from the same line. Entries come back in line order.
func Education(resumeText string, v *vocab.Vocabulary) []types.EducationEntry {
	var entries []types.EducationEntry

	for _, line := range strings.Split(strings.ToLower(resumeText), "\n") {
		for _, degree := range v.Degrees {
			if !strings.Contains(line, degree) {
				continue
			}
			entries = append(entries, types.EducationEntry{
				Degree:   degree,
				Line:     strings.TrimSpace(line),
				Duration: yearRangePattern.FindString(line),
			})
		}
	}

	return entries
}

// JDEducationRequirement returns the first degree keyword (in vocabulary
// order) found anywhere in the job description, or "" when none appears.
func JDEducationRequirement(jdText string, v *vocab.Vocabulary) string {
	lowered := strings.ToLower(jdText)
	for _, degree := range v.Degrees {
		if strings.Contains(lowered, degree) {
			return degree
		}
	}
	return ""
}

// MatchEducation classifies the resume education against the JD requirement.
// Containment is substring-based between the requirement and each detected
// degree, which can miss equivalent degrees under different names (a JD
// asking for "bachelor" will not match a detected "b.tech").
func MatchEducation(entries []types.EducationEntry, jdRequirement string) types.EducationMatch {
	if jdRequirement == "" {
		return types.EducationNotRequired
	}
	for _, entry := range entries {
		if strings.Contains(entry.Degree, jdRequirement) {
			return types.EducationMatched
		}
	}
	return types.EducationMissing
}
