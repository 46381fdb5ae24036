package matching

import (
	"sort"
	"strings"
)

// Profile is the candidate-side input to a scoring pass. It is immutable for
// the duration of the pass.
type Profile struct {
	Skills          []string
	Bio             string
	ExperienceYears float64
	DesiredLocation string
}

// Job is the posting-side input. Metadata not listed here (company, salary,
// ids) plays no part in scoring and stays with the caller.
type Job struct {
	Title           string
	Description     string
	RequiredSkills  []string
	Location        string
	ExperienceYears float64
}

// ComponentScores holds the four independent factor scores, each in [0,1].
type ComponentScores struct {
	SkillMatch      float64
	TextSimilarity  float64
	ExperienceMatch float64
	LocationMatch   float64
}

// Overall blends the components with the fixed weights.
func (s ComponentScores) Overall() float64 {
	return s.SkillMatch*SkillWeight +
		s.TextSimilarity*TextWeight +
		s.ExperienceMatch*ExperienceWeight +
		s.LocationMatch*LocationWeight
}

// Result pairs a job (by its index in the input slice) with its scores.
// Scores are kept at full precision; display rounding is the caller's concern.
type Result struct {
	OriginalIndex int
	Scores        ComponentScores
	OverallScore  float64
	Explanation   string
}

// Match scores every job against the profile and returns results sorted by
// overall score descending. The sort is stable, so ties keep their input
// order. A limit > 0 truncates the ranked list after sorting.
//
// The TF-IDF model is rebuilt from scratch on every call: the corpus is all
// job texts plus the query text, so IDF statistics are computed jointly.
// The pass touches no shared state and is safe to run concurrently for
// independent requests.
func Match(profile Profile, jobs []Job, limit int) []Result {
	if len(jobs) == 0 {
		return nil
	}

	docs := make([]string, 0, len(jobs)+1)
	for _, j := range jobs {
		docs = append(docs, jobText(j))
	}
	docs = append(docs, queryText(profile))

	vectors := BuildVectors(docs)
	query := vectors[len(vectors)-1]

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		scores := ComponentScores{
			SkillMatch:      SkillCoverage(job.RequiredSkills, profile.Skills),
			TextSimilarity:  Cosine(query, vectors[i]),
			ExperienceMatch: ExperienceScore(job.ExperienceYears, profile.ExperienceYears),
			LocationMatch:   LocationScore(job.Location, profile.DesiredLocation),
		}
		results[i] = Result{
			OriginalIndex: i,
			Scores:        scores,
			OverallScore:  scores.Overall(),
			Explanation:   Explain(scores),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

func jobText(j Job) string {
	parts := make([]string, 0, 3)
	if j.Title != "" {
		parts = append(parts, j.Title)
	}
	if j.Description != "" {
		parts = append(parts, j.Description)
	}
	if len(j.RequiredSkills) > 0 {
		parts = append(parts, strings.Join(j.RequiredSkills, " "))
	}
	return strings.Join(parts, " ")
}

func queryText(p Profile) string {
	parts := make([]string, 0, 2)
	if len(p.Skills) > 0 {
		parts = append(parts, strings.Join(p.Skills, " "))
	}
	if p.Bio != "" {
		parts = append(parts, p.Bio)
	}
	return strings.Join(parts, " ")
}
