package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrAlreadyApplied  = errors.New("already applied to this job")
	ErrJobAlreadySaved = errors.New("job already saved")
	ErrSavedJobMissing = errors.New("saved job not found")
)

type JobRepository interface {
	Create(job *model.Job) error
	ByID(id string) (*model.Job, error)
	List(opts CatalogListOptions) ([]*model.Job, int, error)
	Search(q string) ([]*model.Job, error)
	Delete(id string) error

	Apply(app *model.JobApplication) error
	ApplicationsByUser(userID string) ([]*model.JobApplication, error)
	CountAppliedBetween(userID string, from, to time.Time) (int, error)

	Save(saved *model.SavedJob) error
	Unsave(userID, jobID string) error
	SavedByUser(userID string) ([]*model.Job, error)
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	query := `INSERT INTO jobs (id, title, company, location, type, salary_range, description, posted_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		job.SalaryRange,
		job.Description,
		job.PostedAt,
		job.CreatedAt,
	)

	return err
}

func (r *jobRepository) ByID(id string) (*model.Job, error) {
	job := &model.Job{}
	err := r.db.Get(job, `SELECT * FROM jobs WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}

	return job, err
}

func (r *jobRepository) List(opts CatalogListOptions) ([]*model.Job, int, error) {
	where := `WHERE 1=1`
	args := []any{}

	if opts.Search != "" {
		args = append(args, likePattern(opts.Search))
		p := itoa(len(args))
		where += ` AND (LOWER(title) LIKE $` + p + ` ESCAPE '\' OR LOWER(company) LIKE $` + p + ` ESCAPE '\' OR LOWER(location) LIKE $` + p + ` ESCAPE '\')`
	}

	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM jobs `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT * FROM jobs ` + where +
		` ORDER BY posted_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	var jobs []*model.Job
	err = r.db.Select(&jobs, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepository) Search(q string) ([]*model.Job, error) {
	var jobs []*model.Job
	pattern := likePattern(q)
	query := `SELECT * FROM jobs
	          WHERE LOWER(title) LIKE $1 ESCAPE '\' OR LOWER(company) LIKE $1 ESCAPE '\'
	          ORDER BY posted_at DESC LIMIT 20`

	err := r.db.Select(&jobs, query, pattern)
	return jobs, err
}

func (r *jobRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *jobRepository) Apply(app *model.JobApplication) error {
	query := `INSERT INTO job_applications (id, user_id, job_id, status, applied_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, app.ID, app.UserID, app.JobID, app.Status, app.AppliedAt)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrAlreadyApplied
		}
	}

	return err
}

func (r *jobRepository) ApplicationsByUser(userID string) ([]*model.JobApplication, error) {
	var apps []*model.JobApplication
	query := `SELECT a.*, j.title AS job_title, j.company
	          FROM job_applications a
	          JOIN jobs j ON j.id = a.job_id
	          WHERE a.user_id = $1
	          ORDER BY a.applied_at DESC`

	err := r.db.Select(&apps, query, userID)
	return apps, err
}

func (r *jobRepository) CountAppliedBetween(userID string, from, to time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM job_applications WHERE user_id = $1 AND applied_at >= $2 AND applied_at < $3`
	err := r.db.Get(&count, query, userID, from, to)
	return count, err
}

func (r *jobRepository) Save(saved *model.SavedJob) error {
	query := `INSERT INTO saved_jobs (id, user_id, job_id, saved_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, saved.ID, saved.UserID, saved.JobID, saved.SavedAt)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrJobAlreadySaved
		}
	}

	return err
}

func (r *jobRepository) Unsave(userID, jobID string) error {
	result, err := r.db.Exec(`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSavedJobMissing
	}

	return nil
}

func (r *jobRepository) SavedByUser(userID string) ([]*model.Job, error) {
	var jobs []*model.Job
	query := `SELECT j.* FROM jobs j
	          JOIN saved_jobs s ON s.job_id = j.id
	          WHERE s.user_id = $1
	          ORDER BY s.saved_at DESC`

	err := r.db.Select(&jobs, query, userID)
	return jobs, err
}
