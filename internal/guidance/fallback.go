package guidance

import (
	"strings"

	"github.com/jonathan/resume-mentor/internal/types"
)

const (
	strengthsHeading   = "Strengths"
	weaknessesHeading  = "Areas To Improve"
	suggestionsHeading = "Suggestions"
)

// Fallback derives mentor feedback from the report alone: no randomness, no
// external calls, fully reproducible for the same report. skillOrder fixes the
// iteration order over tracked skills so the output is stable. The headings
// are chosen to round-trip through ParseSections.
func Fallback(report *types.AnalysisReport, skillOrder []string) string {
	var strengths, weaknesses, suggestions []string

	if report.Education.Match == types.EducationMatched {
		strengths = append(strengths,
			"You meet the education requirement mentioned in the job description.")
	} else {
		weaknesses = append(weaknesses,
			"Your education does not clearly match the job requirement.")
	}

	if report.Projects.HasProjects {
		strengths = append(strengths,
			"Your resume includes projects, which is a strong positive signal.")
	} else {
		weaknesses = append(weaknesses,
			"Your resume does not clearly mention any projects.")
	}

	if len(report.Experience.ResumeDomains) > 0 {
		strengths = append(strengths,
			"You mention relevant domains such as "+strings.Join(report.Experience.ResumeDomains, ", ")+".")
	}

	if missing := report.MissingSkills(skillOrder); len(missing) > 0 {
		weaknesses = append(weaknesses,
			"Several important technical skills required by the job are not clearly demonstrated in your resume.")
		suggestions = append(suggestions,
			"Rewrite your project descriptions to explicitly mention tools like Python, machine learning libraries, frameworks, Git, and deployment tools.")
	}

	var sb strings.Builder
	sb.WriteString("Here is a mentor-style review of your resume:\n\n")

	writeSection := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(heading + ":\n")
		for _, item := range items {
			sb.WriteString("- " + item + "\n")
		}
		sb.WriteString("\n")
	}

	writeSection(strengthsHeading, strengths)
	writeSection(weaknessesHeading, weaknesses)
	writeSection(suggestionsHeading, suggestions)

	sb.WriteString("Overall, your profile shows good potential. " +
		"Improving how clearly you present your technical skills and projects " +
		"will significantly increase your chances of matching this role.")

	return sb.String()
}
