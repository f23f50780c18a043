package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v := Default()

	assert.Len(t, v.Skills, 15)
	assert.Equal(t, "b.tech", v.Degrees[0])
	assert.Contains(t, v.Skills, "machine learning")
	assert.Contains(t, v.Domains, "backend")
	assert.Contains(t, v.Roles, "engineer")
	assert.Contains(t, v.ProjectSignals, "built")
	assert.Contains(t, v.Extras, "open source")
	assert.NoError(t, v.Validate())
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{"skills": ["go", "kubernetes"], "roles": ["sre"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "kubernetes"}, v.Skills)
	assert.Equal(t, []string{"sre"}, v.Roles)

	// Untouched lists keep defaults.
	assert.Equal(t, Default().Degrees, v.Degrees)
	assert.Equal(t, Default().Extras, v.Extras)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vocab.json")
	assert.Error(t, err)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyKeyword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": ["python", ""]}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty keyword")
}
