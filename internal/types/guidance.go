package types

// GuidanceSource records which strategy produced the guidance text
type GuidanceSource string

// GuidanceSource values
const (
	// SourceLLM means the text came from the generative model
	SourceLLM GuidanceSource = "llm"
	// SourceRuleBased means the text came from the deterministic fallback
	SourceRuleBased GuidanceSource = "rule_based"
)

// GuidanceResult is the terminal artifact of an analysis: the mentor-style
// narrative plus its parse into labeled sections for rendering.
type GuidanceResult struct {
	Text     string              `json:"text"`
	Source   GuidanceSource      `json:"source"`
	Sections map[string][]string `json:"sections"`
	// Headings preserves the order sections appeared in the text, since the
	// sections map has no iteration order of its own.
	Headings []string `json:"headings"`
}
