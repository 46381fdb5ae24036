package matching_test

import (
	"testing"

	"go-jobmatch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestExperienceScore(t *testing.T) {
	t.Run("Meeting the requirement scores 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.ExperienceScore(5, 5))
		assert.Equal(t, 1.0, matching.ExperienceScore(5, 8))
	})

	t.Run("No requirement always scores 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.ExperienceScore(0, 0))
		assert.Equal(t, 1.0, matching.ExperienceScore(0, 3))
	})

	t.Run("Shortfall decays linearly relative to the requirement", func(t *testing.T) {
		assert.Equal(t, 0.0, matching.ExperienceScore(5, 0))
		assert.InDelta(t, 0.8, matching.ExperienceScore(5, 4), 1e-9)
		assert.InDelta(t, 0.5, matching.ExperienceScore(10, 5), 1e-9)
	})
}

func TestLocationScore(t *testing.T) {
	t.Run("Remote takes priority over empty preference", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.LocationScore("Remote", ""))
		assert.Equal(t, 1.0, matching.LocationScore("Berlin (Remote)", "Paris"))
		assert.Equal(t, 1.0, matching.LocationScore("Austin, TX", "remote only"))
	})

	t.Run("Empty preference is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, matching.LocationScore("New York, NY", ""))
	})

	t.Run("Exact match after lowercasing and trimming", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.LocationScore(" Austin, TX ", "austin, tx"))
	})

	t.Run("Containment either way scores 0.8", func(t *testing.T) {
		assert.Equal(t, 0.8, matching.LocationScore("San Francisco, CA", "San Francisco"))
		assert.Equal(t, 0.8, matching.LocationScore("San Francisco", "San Francisco, CA"))
	})

	t.Run("Mismatch keeps a soft-filter baseline", func(t *testing.T) {
		assert.Equal(t, 0.3, matching.LocationScore("Seattle, WA", "Miami, FL"))
	})
}

func TestExplain(t *testing.T) {
	t.Run("Phrases follow skill, experience, location order", func(t *testing.T) {
		got := matching.Explain(matching.ComponentScores{
			SkillMatch:      0.9,
			TextSimilarity:  0.2,
			ExperienceMatch: 1.0,
			LocationMatch:   0.8,
		})
		assert.Equal(t, "Excellent skill match, meets experience requirements, great location fit", got)
	})

	t.Run("Lower bands", func(t *testing.T) {
		got := matching.Explain(matching.ComponentScores{
			SkillMatch:      0.6,
			ExperienceMatch: 0.4,
			LocationMatch:   0.5,
		})
		assert.Equal(t, "Good skill match, experience below requirement, location flexible", got)

		got = matching.Explain(matching.ComponentScores{
			SkillMatch:      0.2,
			ExperienceMatch: 0.9,
			LocationMatch:   0.3,
		})
		assert.Equal(t, "Limited skill overlap, experience below requirement, location may not match", got)
	})
}

func TestOverallWeights(t *testing.T) {
	t.Run("Weights sum to 1.0", func(t *testing.T) {
		sum := matching.SkillWeight + matching.TextWeight + matching.ExperienceWeight + matching.LocationWeight
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("Overall is the fixed weighted sum", func(t *testing.T) {
		s := matching.ComponentScores{
			SkillMatch:      0.75,
			TextSimilarity:  0.4,
			ExperienceMatch: 0.8,
			LocationMatch:   0.8,
		}
		want := 0.45*0.75 + 0.30*0.4 + 0.15*0.8 + 0.10*0.8
		assert.InDelta(t, want, s.Overall(), 1e-9)
	})
}
