// Package guidance turns an analysis report into mentor-style feedback, via
// the generative model when it is available and a deterministic rule-based
// fallback otherwise.
package guidance

import (
	"regexp"
	"strings"
)

// IntroHeading is the pseudo-heading for text preceding the first section.
const IntroHeading = "Intro"

var (
	// blankRuns matches runs of blank lines for collapsing.
	blankRuns = regexp.MustCompile(`\n{2,}`)
	// headingPattern matches a section heading: word characters and spaces
	// followed by a colon. Deliberately loose to cope with free-form model
	// output; anything stricter would need a structured-output contract with
	// the model instead.
	headingPattern = regexp.MustCompile(`[A-Za-z\s]+:`)
)

// ParseSections splits free-form guidance text into labeled sections. Runs of
// blank lines collapse to single separators. Each heading owns the content up
// to the next heading, split into non-empty trimmed lines, one paragraph per
// line. Text before the first heading is stored under the Intro pseudo-heading
// as a single paragraph. A repeated heading overwrites the earlier one and
// keeps its original position in the returned order.
func ParseSections(text string) (map[string][]string, []string) {
	sections := make(map[string][]string)
	var order []string

	collapsed := blankRuns.ReplaceAllString(strings.TrimSpace(text), "\n")
	if collapsed == "" {
		return sections, order
	}

	matches := headingPattern.FindAllStringIndex(collapsed, -1)

	record := func(heading string, paragraphs []string) {
		if _, exists := sections[heading]; !exists {
			order = append(order, heading)
		}
		sections[heading] = paragraphs
	}

	if len(matches) == 0 {
		record(IntroHeading, []string{collapsed})
		return sections, order
	}

	if intro := strings.TrimSpace(collapsed[:matches[0][0]]); intro != "" {
		record(IntroHeading, []string{intro})
	}

	for i, match := range matches {
		heading := strings.TrimSuffix(strings.TrimSpace(collapsed[match[0]:match[1]]), ":")

		end := len(collapsed)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		record(heading, paragraphs(collapsed[match[1]:end]))
	}

	return sections, order
}

// paragraphs splits content into non-empty trimmed lines.
func paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
