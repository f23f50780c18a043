// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-mentor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of the analysis report.
func (p *Printer) PrintReport(report *types.AnalysisReport, skillOrder []string) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Education match: %s\n", report.Education.Match))
	if report.Education.JDRequirement != "" {
		sb.WriteString(fmt.Sprintf("JD requires:     %s\n", report.Education.JDRequirement))
	}
	if report.Experience.JDRequiredYears != nil {
		sb.WriteString(fmt.Sprintf("JD experience:   %d years\n", *report.Experience.JDRequiredYears))
	}
	sb.WriteString(fmt.Sprintf("Projects:        %t\n", report.Projects.HasProjects))

	if len(report.Experience.ResumeDomains) > 0 {
		sb.WriteString(fmt.Sprintf("Domains:         %s\n", strings.Join(report.Experience.ResumeDomains, ", ")))
	}
	if len(report.Experience.ResumeRoles) > 0 {
		sb.WriteString(fmt.Sprintf("Roles:           %s\n", strings.Join(report.Experience.ResumeRoles, ", ")))
	}

	if missing := report.MissingSkills(skillOrder); len(missing) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := report.Skills.SemanticSkillAnalysis[missing[i]]
			sb.WriteString(fmt.Sprintf("  • %s (%.3f)\n", missing[i], rec.Similarity))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	if report.SemanticAlignment != nil {
		sb.WriteString(fmt.Sprintf("\nAlignment: avg %.3f, min %.3f, max %.3f\n",
			report.SemanticAlignment.AverageSimilarity,
			report.SemanticAlignment.MinSimilarity,
			report.SemanticAlignment.MaxSimilarity))
	}

	p.printBox("Analysis Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintGuidance outputs the guidance sections in their original order.
func (p *Printer) PrintGuidance(guidance *types.GuidanceResult) {
	if guidance == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", guidance.Source))

	for _, heading := range guidance.Headings {
		sb.WriteString("\n" + heading + "\n")
		for _, paragraph := range guidance.Sections[heading] {
			sb.WriteString("  " + paragraph + "\n")
		}
	}

	p.printBox("Mentor Guidance", strings.TrimRight(sb.String(), "\n"))
}
