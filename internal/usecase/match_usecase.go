package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/matching"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"
)

// MatchCache stores computed match results, keyed by a content hash of the
// profile and the job corpus. Implementations must tolerate being offline:
// a failed read is a miss, a failed write is dropped.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type matchUsecase struct {
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
	cache       MatchCache
	cacheTTL    time.Duration
}

func NewMatchUsecase(jobRepo domain.JobRepository, profileRepo domain.ProfileRepository, cache MatchCache, cacheTTL time.Duration) domain.MatchUsecase {
	return &matchUsecase{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func (u *matchUsecase) MatchJobs(ctx context.Context, input domain.MatchInput) ([]domain.MatchResult, error) {
	if len(input.Skills) == 0 {
		return nil, apperror.BadRequest("At least one skill is required for matching")
	}
	if input.ExperienceYears < 0 {
		return nil, apperror.BadRequest("ExperienceYears cannot be negative")
	}
	if input.Limit < 0 {
		return nil, apperror.BadRequest("Limit cannot be negative")
	}

	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return []domain.MatchResult{}, nil
	}

	key := matchCacheKey(input, jobs)
	if u.cache != nil {
		var cached []domain.MatchResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	profile := matching.Profile{
		Skills:          input.Skills,
		Bio:             input.Bio,
		ExperienceYears: input.ExperienceYears,
		DesiredLocation: input.DesiredLocation,
	}
	corpus := make([]matching.Job, len(jobs))
	for i, j := range jobs {
		corpus[i] = matching.Job{
			Title:           j.Title,
			Description:     j.Description,
			RequiredSkills:  j.RequiredSkills,
			Location:        j.Location,
			ExperienceYears: j.ExperienceYears,
		}
	}

	ranked := matching.Match(profile, corpus, input.Limit)

	results := make([]domain.MatchResult, len(ranked))
	for i, r := range ranked {
		results[i] = domain.MatchResult{
			Job: jobs[r.OriginalIndex],
			Scores: domain.ComponentScores{
				SkillMatch:      r.Scores.SkillMatch,
				TextSimilarity:  r.Scores.TextSimilarity,
				ExperienceMatch: r.Scores.ExperienceMatch,
				LocationMatch:   r.Scores.LocationMatch,
			},
			OverallScore: r.OverallScore,
			Explanation:  r.Explanation,
		}
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, results, u.cacheTTL); err != nil {
			logger.Log.Warn("match cache write failed", "error", err)
		}
	}
	return results, nil
}

func (u *matchUsecase) MatchForUser(ctx context.Context, userID string, limit int) ([]domain.MatchResult, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found. Create a profile before matching.")
	}

	return u.MatchJobs(ctx, domain.MatchInput{
		Skills:          profile.Skills,
		Bio:             profile.Bio,
		ExperienceYears: profile.ExperienceYears,
		DesiredLocation: profile.DesiredLocation,
		Limit:           limit,
	})
}

// matchCacheKey fingerprints the profile and the corpus content, so any job
// change (or a different profile) produces a fresh key. Cached entries for
// stale corpora simply expire, never get mutated in place.
func matchCacheKey(input domain.MatchInput, jobs []domain.Job) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(input)
	for _, j := range jobs {
		_ = enc.Encode(struct {
			ID      int64
			Updated int64
		}{j.ID, j.UpdatedAt.UnixNano()})
	}
	return "match:" + hex.EncodeToString(h.Sum(nil))
}
