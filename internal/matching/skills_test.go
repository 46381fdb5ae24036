package matching_test

import (
	"testing"

	"go-jobmatch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	cases := map[string]string{
		"  Python3 ":      "python",
		"JS":              "javascript",
		"Node.js":         "javascript",
		"ML":              "machine learning",
		"K8s":             "kubernetes",
		"Rust":            "rust",
		"Data   Analysis": "data analysis",
	}
	for in, want := range cases {
		assert.Equal(t, want, matching.NormalizeSkill(in), "input %q", in)
	}
}

func TestSkillCoverage(t *testing.T) {
	t.Run("Empty required set scores 1.0 for any candidate set", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.SkillCoverage(nil, []string{"Go"}))
		assert.Equal(t, 1.0, matching.SkillCoverage([]string{}, nil))
	})

	t.Run("Synonym match counts as covered", func(t *testing.T) {
		score := matching.SkillCoverage([]string{"Python"}, []string{"python3"})
		assert.Equal(t, 1.0, score)
	})

	t.Run("Substring match in either direction counts", func(t *testing.T) {
		// Compound candidate skill contains the requirement.
		assert.Equal(t, 1.0, matching.SkillCoverage([]string{"ML"}, []string{"ml engineer"}))
		// Lenient by design: "java" matches inside "javascript".
		assert.Equal(t, 1.0, matching.SkillCoverage([]string{"Java"}, []string{"JavaScript"}))
	})

	t.Run("Partial coverage is the matched fraction", func(t *testing.T) {
		score := matching.SkillCoverage(
			[]string{"Python", "Machine Learning", "Docker", "AWS"},
			[]string{"Python", "Machine Learning", "Docker"},
		)
		assert.InDelta(t, 0.75, score, 1e-9)
	})

	t.Run("No candidate skills scores 0.0 against a non-empty requirement", func(t *testing.T) {
		assert.Equal(t, 0.0, matching.SkillCoverage([]string{"Go"}, nil))
	})
}
