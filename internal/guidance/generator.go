package guidance

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/resume-mentor/internal/llm"
	"github.com/jonathan/resume-mentor/internal/prompts"
	"github.com/jonathan/resume-mentor/internal/types"
)

// promptFile is the embedded prompt file for guidance generation.
const promptFile = "guidance.json"

// DefaultTimeout bounds the single generative call. No retries: one failed
// attempt immediately selects the fallback.
const DefaultTimeout = 60 * time.Second

// Generator produces guidance from an analysis report. The generative model
// is used when a client is configured and responds; any failure falls through
// to the rule-based strategy, so Generate always returns a complete result.
type Generator struct {
	client     llm.Client
	skillOrder []string
	timeout    time.Duration
}

// NewGenerator creates a Generator. client may be nil, which pins the
// generator to the rule-based strategy. skillOrder fixes fallback iteration
// order over tracked skills.
func NewGenerator(client llm.Client, skillOrder []string) *Generator {
	return &Generator{
		client:     client,
		skillOrder: skillOrder,
		timeout:    DefaultTimeout,
	}
}

// WithTimeout overrides the generative call timeout.
func (g *Generator) WithTimeout(timeout time.Duration) *Generator {
	g.timeout = timeout
	return g
}

// Generate turns the report into mentor guidance. External-dependency
// failures are recovered locally; the caller always receives a result.
func (g *Generator) Generate(ctx context.Context, report *types.AnalysisReport) *types.GuidanceResult {
	if g.client == nil {
		return g.fallback(report)
	}

	content, err := g.generate(ctx, report)
	if err != nil || strings.TrimSpace(content) == "" {
		return g.fallback(report)
	}

	sections, headings := ParseSections(content)
	return &types.GuidanceResult{
		Text:     content,
		Source:   types.SourceLLM,
		Sections: sections,
		Headings: headings,
	}
}

func (g *Generator) generate(ctx context.Context, report *types.AnalysisReport) (string, error) {
	serialized, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	system := prompts.MustGet(promptFile, "system")
	prompt := prompts.Format(prompts.MustGet(promptFile, "mentor_review"), map[string]string{
		"Analysis": string(serialized),
	})

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.client.GenerateContent(ctx, system, prompt)
}

func (g *Generator) fallback(report *types.AnalysisReport) *types.GuidanceResult {
	text := Fallback(report, g.skillOrder)
	sections, headings := ParseSections(text)
	return &types.GuidanceResult{
		Text:     text,
		Source:   types.SourceRuleBased,
		Sections: sections,
		Headings: headings,
	}
}
