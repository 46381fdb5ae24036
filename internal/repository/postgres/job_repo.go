package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobmatch-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, description, required_skills, location, company, salary_min, salary_max, experience_years, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var skills []string
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, pq.Array(&skills), &job.Location,
		&job.Company, &job.SalaryMin, &job.SalaryMax, &job.ExperienceYears,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.RequiredSkills = skills
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, required_skills, location, company, salary_min, salary_max, experience_years, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, pq.Array(job.RequiredSkills), job.Location,
		job.Company, job.SalaryMin, job.SalaryMax, job.ExperienceYears,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	// Empty filter strings match everything, so one query covers both the
	// filtered and unfiltered listings.
	query := `SELECT ` + jobColumns + ` FROM jobs
              WHERE ($1 = '' OR location ILIKE '%' || $1 || '%')
                AND ($2 = '' OR EXISTS (
                    SELECT 1 FROM unnest(required_skills) AS s WHERE s ILIKE '%' || $2 || '%'
                ))
              ORDER BY created_at DESC LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, filter.Location, filter.Skill, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM jobs
                   WHERE ($1 = '' OR location ILIKE '%' || $1 || '%')
                     AND ($2 = '' OR EXISTS (
                         SELECT 1 FROM unnest(required_skills) AS s WHERE s ILIKE '%' || $2 || '%'
                     ))`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, filter.Location, filter.Skill).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	// The matching corpus is expected to stay small (tens to low hundreds),
	// so no pagination here.
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $1, description = $2, required_skills = $3, location = $4,
              company = $5, salary_min = $6, salary_max = $7, experience_years = $8, updated_at = $9
              WHERE id = $10`
	_, err := r.db.Exec(ctx, query,
		job.Title, job.Description, pq.Array(job.RequiredSkills), job.Location,
		job.Company, job.SalaryMin, job.SalaryMax, job.ExperienceYears,
		job.UpdatedAt, job.ID,
	)
	return err
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}
