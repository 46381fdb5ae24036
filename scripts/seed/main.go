// Seeds the jobs table with a small set of demo postings. Safe to run
// repeatedly: postings are matched by title and skipped when present.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/pkg/database"
)

type seedJob struct {
	Title           string
	Description     string
	RequiredSkills  []string
	Location        string
	Company         string
	SalaryMin       float64
	SalaryMax       float64
	ExperienceYears float64
}

var seedJobs = []seedJob{
	{
		Title:           "Senior Software Engineer",
		Description:     "Develop and maintain scalable software solutions.",
		RequiredSkills:  []string{"Python", "Docker", "SQLAlchemy", "JavaScript"},
		Location:        "San Francisco, CA",
		Company:         "Acme Systems",
		SalaryMin:       140000,
		SalaryMax:       190000,
		ExperienceYears: 5,
	},
	{
		Title:           "Data Scientist",
		Description:     "Analyze data and build predictive models.",
		RequiredSkills:  []string{"Python", "Machine Learning", "SQL", "Data Visualization"},
		Location:        "New York, NY",
		Company:         "Quantify Labs",
		SalaryMin:       120000,
		SalaryMax:       170000,
		ExperienceYears: 3,
	},
	{
		Title:           "Frontend Developer",
		Description:     "Create responsive and user-friendly web interfaces.",
		RequiredSkills:  []string{"JavaScript", "React", "HTML", "CSS"},
		Location:        "Austin, TX",
		Company:         "Brightside Media",
		SalaryMin:       90000,
		SalaryMax:       130000,
		ExperienceYears: 2,
	},
	{
		Title:           "DevOps Engineer",
		Description:     "Implement CI/CD pipelines and manage cloud infrastructure.",
		RequiredSkills:  []string{"Docker", "Kubernetes", "AWS", "Linux"},
		Location:        "Seattle, WA",
		Company:         "Northcloud",
		SalaryMin:       110000,
		SalaryMax:       160000,
		ExperienceYears: 4,
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted := 0
	for _, j := range seedJobs {
		var exists bool
		err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE title = $1)`, j.Title).Scan(&exists)
		if err != nil {
			log.Fatalf("Failed to check job %q: %v", j.Title, err)
		}
		if exists {
			fmt.Printf("Skipping %q (already seeded)\n", j.Title)
			continue
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO jobs (title, description, required_skills, location, company, salary_min, salary_max, experience_years, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
			j.Title, j.Description, pq.Array(j.RequiredSkills), j.Location, j.Company,
			j.SalaryMin, j.SalaryMax, j.ExperienceYears,
		)
		if err != nil {
			log.Fatalf("Failed to insert job %q: %v", j.Title, err)
		}
		fmt.Printf("Inserted %q\n", j.Title)
		inserted++
	}

	fmt.Printf("Done: %d job(s) inserted\n", inserted)
}
