package matching

import "strings"

// Fixed component weights. They sum to 1.0 so the overall score stays in [0,1].
const (
	SkillWeight      = 0.45
	TextWeight       = 0.30
	ExperienceWeight = 0.15
	LocationWeight   = 0.10
)

// ExperienceScore compares required against candidate years. Meeting or
// exceeding the requirement scores 1.0; a shortfall decays linearly relative
// to the requirement, so missing two years on a senior role costs less than
// missing two years on a junior one.
func ExperienceScore(required, candidate float64) float64 {
	if candidate >= required {
		return 1.0
	}
	denom := required
	if denom < 1 {
		denom = 1
	}
	score := 1 - (required-candidate)/denom
	if score < 0 {
		return 0
	}
	return score
}

// LocationScore compares the job location against the candidate's preference.
// Rules apply in priority order: remote beats everything, an absent preference
// is neutral, then exact match, containment, and a soft-filter baseline.
func LocationScore(jobLocation, desiredLocation string) float64 {
	job := strings.ToLower(strings.TrimSpace(jobLocation))
	desired := strings.ToLower(strings.TrimSpace(desiredLocation))

	if strings.Contains(job, "remote") || strings.Contains(desired, "remote") {
		return 1.0
	}
	if desired == "" {
		return 0.5
	}
	if job == desired {
		return 1.0
	}
	if job != "" && (strings.Contains(job, desired) || strings.Contains(desired, job)) {
		return 0.8
	}
	return 0.3
}

// scoreBand maps a minimum component score to its explanation phrase.
// Bands are evaluated top-down; the last band acts as the catch-all.
type scoreBand struct {
	min    float64
	phrase string
}

var (
	skillBands = []scoreBand{
		{0.8, "Excellent skill match"},
		{0.5, "Good skill match"},
		{0, "Limited skill overlap"},
	}
	experienceBands = []scoreBand{
		{1.0, "meets experience requirements"},
		{0, "experience below requirement"},
	}
	locationBands = []scoreBand{
		{0.8, "great location fit"},
		{0.5, "location flexible"},
		{0, "location may not match"},
	}
)

func bandPhrase(bands []scoreBand, score float64) string {
	for _, b := range bands {
		if score >= b.min {
			return b.phrase
		}
	}
	return bands[len(bands)-1].phrase
}

// Explain builds the human-readable match summary from the component scores.
// Phrase order is skill, experience, location; text similarity only
// contributes to the overall score.
func Explain(s ComponentScores) string {
	phrases := []string{
		bandPhrase(skillBands, s.SkillMatch),
		bandPhrase(experienceBands, s.ExperienceMatch),
		bandPhrase(locationBands, s.LocationMatch),
	}
	return strings.Join(phrases, ", ")
}
