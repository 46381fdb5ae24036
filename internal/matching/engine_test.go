package matching_test

import (
	"testing"

	"go-jobmatch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestMatchRanking(t *testing.T) {
	strong := matching.Job{
		Title:           "Backend Engineer",
		Description:     "Build Go services with Python tooling",
		RequiredSkills:  []string{"Python", "Go"},
		Location:        "Remote",
		ExperienceYears: 2,
	}
	weak := matching.Job{
		Title:           "Accountant",
		Description:     "Quarterly bookkeeping and audits",
		RequiredSkills:  []string{"Accounting", "Excel"},
		Location:        "Oslo",
		ExperienceYears: 10,
	}
	profile := matching.Profile{
		Skills:          []string{"Python", "Go"},
		ExperienceYears: 5,
		DesiredLocation: "Berlin",
	}

	t.Run("Stable sort preserves input order among equal scores", func(t *testing.T) {
		// jobs 0 and 2 are identical, so their overall scores tie exactly.
		results := matching.Match(profile, []matching.Job{strong, weak, strong}, 0)
		assert.Len(t, results, 3)
		assert.Equal(t, 0, results[0].OriginalIndex)
		assert.Equal(t, 2, results[1].OriginalIndex)
		assert.Equal(t, 1, results[2].OriginalIndex)
		assert.Equal(t, results[0].OverallScore, results[1].OverallScore)
	})

	t.Run("Limit is applied after sorting", func(t *testing.T) {
		results := matching.Match(profile, []matching.Job{weak, strong}, 1)
		assert.Len(t, results, 1)
		assert.Equal(t, 1, results[0].OriginalIndex)
	})

	t.Run("Empty corpus yields no results", func(t *testing.T) {
		assert.Empty(t, matching.Match(profile, nil, 5))
	})

	t.Run("All component scores stay within [0,1]", func(t *testing.T) {
		results := matching.Match(profile, []matching.Job{strong, weak, {}}, 0)
		for _, r := range results {
			for _, v := range []float64{
				r.Scores.SkillMatch, r.Scores.TextSimilarity,
				r.Scores.ExperienceMatch, r.Scores.LocationMatch, r.OverallScore,
			} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	})
}

func TestMatchTextSimilarityEdges(t *testing.T) {
	profile := matching.Profile{Skills: []string{"python"}, Bio: "machine learning with python"}

	t.Run("Job sharing no tokens with the query scores 0.0", func(t *testing.T) {
		job := matching.Job{Description: "carpentry woodwork joinery"}
		results := matching.Match(profile, []matching.Job{job}, 0)
		assert.Equal(t, 0.0, results[0].Scores.TextSimilarity)
	})

	t.Run("Job text identical to the query scores 1.0", func(t *testing.T) {
		job := matching.Job{Description: "python machine learning with python"}
		results := matching.Match(profile, []matching.Job{job}, 0)
		assert.InDelta(t, 1.0, results[0].Scores.TextSimilarity, 1e-6)
	})
}

func TestMatchEndToEnd(t *testing.T) {
	profile := matching.Profile{
		Skills:          []string{"Python", "Machine Learning", "Docker"},
		ExperienceYears: 4,
		DesiredLocation: "San Francisco",
	}
	job := matching.Job{
		Title:           "Senior ML Engineer",
		Description:     "Ship machine learning models to production",
		RequiredSkills:  []string{"Python", "Machine Learning", "Docker", "AWS"},
		Location:        "San Francisco, CA",
		ExperienceYears: 5,
	}

	results := matching.Match(profile, []matching.Job{job}, 0)
	assert.Len(t, results, 1)
	r := results[0]

	assert.InDelta(t, 0.75, r.Scores.SkillMatch, 1e-9)
	assert.Equal(t, 0.8, r.Scores.LocationMatch)
	assert.Less(t, r.Scores.ExperienceMatch, 1.0)
	assert.InDelta(t, 0.8, r.Scores.ExperienceMatch, 1e-9)

	want := 0.45*r.Scores.SkillMatch +
		0.30*r.Scores.TextSimilarity +
		0.15*r.Scores.ExperienceMatch +
		0.10*r.Scores.LocationMatch
	assert.InDelta(t, want, r.OverallScore, 1e-9)
	assert.Contains(t, r.Explanation, "experience below requirement")
}
