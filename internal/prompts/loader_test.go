package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	system, err := Get("guidance.json", "system")
	require.NoError(t, err)
	assert.NotEmpty(t, system)

	review, err := Get("guidance.json", "mentor_review")
	require.NoError(t, err)
	assert.Contains(t, review, "{{.Analysis}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("guidance.json", "no_such_key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_key")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	assert.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() { MustGet("guidance.json", "no_such_key") })
	assert.NotPanics(t, func() { MustGet("guidance.json", "system") })
}

func TestFormat(t *testing.T) {
	out := Format("Review this: {{.Analysis}} for {{.Role}}", map[string]string{
		"Analysis": `{"skills": {}}`,
		"Role":     "backend",
	})
	assert.Equal(t, `Review this: {"skills": {}} for backend`, out)
}

func TestFormat_UnmatchedPlaceholderLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", out)
}
