package extract

import (
	"strings"

	"github.com/jonathan/resume-mentor/internal/vocab"
)

// HasProjects reports whether any project-signal keyword appears in the resume.
func HasProjects(resumeText string, v *vocab.Vocabulary) bool {
	lowered := strings.ToLower(resumeText)
	for _, keyword := range v.ProjectSignals {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Extras returns the extracurricular keywords present in the resume, in
// vocabulary order.
func Extras(resumeText string, v *vocab.Vocabulary) []string {
	return membership(resumeText, v.Extras)
}
