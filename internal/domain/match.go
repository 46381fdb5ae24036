package domain

import "context"

// MatchInput is the candidate-shaped value handed to the scoring core.
// Validation of ranges (non-negative experience, at least one skill) happens
// at the request boundary before the scorer is reached.
type MatchInput struct {
	Skills          []string `json:"skills"`
	Bio             string   `json:"bio"`
	ExperienceYears float64  `json:"experience_years"`
	DesiredLocation string   `json:"desired_location"`
	Limit           int      `json:"limit"`
}

// ComponentScores carries the four factor scores at full precision.
// Display rounding is a delivery-layer concern.
type ComponentScores struct {
	SkillMatch      float64 `json:"skill_match"`
	TextSimilarity  float64 `json:"text_similarity"`
	ExperienceMatch float64 `json:"experience_match"`
	LocationMatch   float64 `json:"location_match"`
}

// MatchResult is transient: constructed per scoring call, never persisted.
type MatchResult struct {
	Job          Job             `json:"job"`
	Scores       ComponentScores `json:"scores"`
	OverallScore float64         `json:"overall_score"`
	Explanation  string          `json:"explanation"`
}

type MatchUsecase interface {
	MatchJobs(ctx context.Context, input MatchInput) ([]MatchResult, error)
	MatchForUser(ctx context.Context, userID string, limit int) ([]MatchResult, error)
}
