// Package ingestion turns raw intake (typed text, PDF uploads, posting URLs)
// into cleaned document text ready for analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace   = regexp.MustCompile(`\s+`)
	excessBlanks = regexp.MustCompile(`\n\n\n+`)
	controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
)

// CleanText normalizes document text while preserving line structure, which
// the education detector depends on. Line endings become LF, control
// characters from PDF extraction are stripped, runs of spaces collapse to
// one, and blank-line runs shrink to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = controlChars.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			cleaned = append(cleaned, "")
			continue
		}
		cleaned = append(cleaned, multiSpace.ReplaceAllString(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
