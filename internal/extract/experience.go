package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-mentor/internal/vocab"
)

// yearsPattern matches experience requirements like "3 years" or "5+ years".
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s+years?`)

// RequiredYears returns the largest years-of-experience figure mentioned in
// the job description. The second return is false when no figure appears.
func RequiredYears(jdText string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(strings.ToLower(jdText), -1)
	if len(matches) == 0 {
		return 0, false
	}

	maxYears := 0
	for _, m := range matches {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > maxYears {
			maxYears = years
		}
	}
	return maxYears, true
}

// Domains returns the domain keywords present in the resume, in vocabulary
// order for stable output.
func Domains(resumeText string, v *vocab.Vocabulary) []string {
	return membership(resumeText, v.Domains)
}

// Roles returns the role keywords present in the resume, in vocabulary order.
func Roles(resumeText string, v *vocab.Vocabulary) []string {
	return membership(resumeText, v.Roles)
}

// membership returns the keywords found in text, deduplicated, preserving
// keyword-list order.
func membership(text string, keywords []string) []string {
	lowered := strings.ToLower(text)
	found := []string{}
	seen := make(map[string]struct{})

	for _, keyword := range keywords {
		if _, dup := seen[keyword]; dup {
			continue
		}
		if strings.Contains(lowered, keyword) {
			found = append(found, keyword)
			seen[keyword] = struct{}{}
		}
	}
	return found
}
