package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	RequiredSkills  []string  `json:"required_skills"`
	Location        string    `json:"location"`
	Company         string    `json:"company,omitempty"`
	SalaryMin       float64   `json:"salary_min,omitempty"`
	SalaryMax       float64   `json:"salary_max,omitempty"`
	ExperienceYears float64   `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobFilter narrows job listings. Location and Skill are case-insensitive
// substring filters, matching the public list endpoint's behavior.
type JobFilter struct {
	Location string
	Skill    string
	Limit    int
	Offset   int
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter) ([]Job, int64, error)
	FetchAll(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int, location, skill string) ([]Job, int64, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id int64) error
}
