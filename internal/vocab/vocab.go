// Package vocab provides the fixed keyword vocabularies the analyzer scans for.
// A Vocabulary is built once at startup and treated as read-only afterwards,
// so it can be shared across requests without locking.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
)

// Vocabulary holds every keyword list the extractors and the skill alignment
// engine consult. All entries are stored lowercase; matching is substring-based
// against lowercased document text.
type Vocabulary struct {
	// Degrees are degree keywords searched line by line in the resume and
	// anywhere in the job description.
	Degrees []string `json:"degrees"`
	// Skills are the tracked technical skills for semantic alignment.
	Skills []string `json:"skills"`
	// Domains are experience-domain keywords.
	Domains []string `json:"domains"`
	// Roles are role keywords.
	Roles []string `json:"roles"`
	// ProjectSignals are words whose presence marks project work.
	ProjectSignals []string `json:"project_signals"`
	// Extras are extracurricular keywords.
	Extras []string `json:"extras"`
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return &Vocabulary{
		Degrees: []string{
			"b.tech", "b.e", "bachelor", "m.tech", "m.e", "master",
			"b.sc", "m.sc", "phd",
		},
		Skills: []string{
			"python", "java", "c++", "sql", "machine learning",
			"deep learning", "nlp", "data science",
			"tensorflow", "pytorch", "flask", "fastapi",
			"docker", "aws", "git",
		},
		Domains: []string{
			"ml", "machine learning", "nlp", "backend", "frontend", "data",
		},
		Roles: []string{
			"intern", "engineer", "developer", "analyst",
		},
		ProjectSignals: []string{
			"project", "built", "developed", "implemented",
		},
		Extras: []string{
			"hackathon", "volunteer", "open source", "club",
		},
	}
}

// Load reads a vocabulary from a JSON file. Lists that are absent from the
// file fall back to the built-in defaults, so an override file only needs the
// lists it changes.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	defaults := Default()
	if len(v.Degrees) == 0 {
		v.Degrees = defaults.Degrees
	}
	if len(v.Skills) == 0 {
		v.Skills = defaults.Skills
	}
	if len(v.Domains) == 0 {
		v.Domains = defaults.Domains
	}
	if len(v.Roles) == 0 {
		v.Roles = defaults.Roles
	}
	if len(v.ProjectSignals) == 0 {
		v.ProjectSignals = defaults.ProjectSignals
	}
	if len(v.Extras) == 0 {
		v.Extras = defaults.Extras
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}

	return &v, nil
}

// Validate checks that no list contains an empty keyword.
func (v *Vocabulary) Validate() error {
	lists := map[string][]string{
		"degrees":         v.Degrees,
		"skills":          v.Skills,
		"domains":         v.Domains,
		"roles":           v.Roles,
		"project_signals": v.ProjectSignals,
		"extras":          v.Extras,
	}
	for name, list := range lists {
		for _, entry := range list {
			if entry == "" {
				return fmt.Errorf("vocabulary error: %s contains an empty keyword", name)
			}
		}
	}
	return nil
}
