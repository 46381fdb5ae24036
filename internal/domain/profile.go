package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id" validate:"required"`
	Bio             string    `json:"bio" validate:"max=500"`
	Skills          []string  `json:"skills" validate:"required,min=1,dive,min=1"`
	ExperienceYears float64   `json:"experience_years" validate:"gte=0"`
	DesiredLocation string    `json:"desired_location"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
}
