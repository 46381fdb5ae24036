package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func validateJob(job *domain.Job) error {
	if strings.TrimSpace(job.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(job.Description) == "" {
		return apperror.BadRequest("Description is required")
	}
	if len(job.RequiredSkills) == 0 {
		return apperror.BadRequest("At least one required skill is needed")
	}
	if job.ExperienceYears < 0 {
		return apperror.BadRequest("ExperienceYears cannot be negative")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := validateJob(job); err != nil {
		return err
	}

	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int, location, skill string) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	filter := domain.JobFilter{
		Location: strings.TrimSpace(location),
		Skill:    strings.TrimSpace(skill),
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}
	return u.jobRepo.Fetch(ctx, filter)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	if err := validateJob(job); err != nil {
		return err
	}

	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Job not found")
	}

	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Job not found")
	}
	return u.jobRepo.Delete(ctx, id)
}
