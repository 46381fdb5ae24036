package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobmatch-backend/internal/domain"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT id, user_id, bio, skills, experience_years, desired_location, created_at, updated_at
              FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	var skills []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Bio, pq.Array(&skills), &p.ExperienceYears,
		&p.DesiredLocation, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (user_id, bio, skills, experience_years, desired_location, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
              ON CONFLICT (user_id) DO UPDATE SET
                  bio = EXCLUDED.bio,
                  skills = EXCLUDED.skills,
                  experience_years = EXCLUDED.experience_years,
                  desired_location = EXCLUDED.desired_location,
                  updated_at = NOW()
              RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Bio, pq.Array(profile.Skills),
		profile.ExperienceYears, profile.DesiredLocation,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}
