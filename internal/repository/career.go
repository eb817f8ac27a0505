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
	ErrCareerNotFound        = errors.New("career not found")
	ErrCareerAlreadySelected = errors.New("career already selected")
)

// CatalogListOptions paginate and filter catalog listings (careers, skills,
// jobs, courses share the same shape).
type CatalogListOptions struct {
	Search string
	Limit  int
	Offset int
}

type CareerRepository interface {
	Create(career *model.Career) error
	ByID(id string) (*model.Career, error)
	List(opts CatalogListOptions) ([]*model.Career, int, error)
	Search(q string) ([]*model.Career, error)
	Update(career *model.Career) error
	Delete(id string) error

	Select(uc *model.UserCareer) error
	Unselect(userID, careerID string) error
	SelectedByUser(userID string) ([]*model.Career, error)
}

type careerRepository struct {
	db *sqlx.DB
}

func NewCareerRepository(db *sqlx.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) Create(career *model.Career) error {
	query := `INSERT INTO careers (id, title, field, description, required_skills, salary_range, demand_level, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		career.ID,
		career.Title,
		career.Field,
		career.Description,
		career.RequiredSkills,
		career.SalaryRange,
		career.DemandLevel,
		career.CreatedAt,
		career.UpdatedAt,
	)

	return err
}

func (r *careerRepository) ByID(id string) (*model.Career, error) {
	career := &model.Career{}
	query := `SELECT * FROM careers WHERE id = $1`

	err := r.db.Get(career, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCareerNotFound
	}

	return career, err
}

func (r *careerRepository) List(opts CatalogListOptions) ([]*model.Career, int, error) {
	where := `WHERE 1=1`
	args := []any{}

	if opts.Search != "" {
		args = append(args, likePattern(opts.Search))
		p := itoa(len(args))
		where += ` AND (LOWER(title) LIKE $` + p + ` ESCAPE '\' OR LOWER(field) LIKE $` + p + ` ESCAPE '\')`
	}

	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM careers `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT * FROM careers ` + where +
		` ORDER BY title ASC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	var careers []*model.Career
	err = r.db.Select(&careers, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return careers, total, nil
}

func (r *careerRepository) Search(q string) ([]*model.Career, error) {
	var careers []*model.Career
	pattern := likePattern(q)
	query := `SELECT * FROM careers
	          WHERE LOWER(title) LIKE $1 ESCAPE '\' OR LOWER(field) LIKE $1 ESCAPE '\' OR LOWER(description) LIKE $1 ESCAPE '\'
	          ORDER BY title ASC LIMIT 20`

	err := r.db.Select(&careers, query, pattern)
	return careers, err
}

func (r *careerRepository) Update(career *model.Career) error {
	query := `UPDATE careers
	          SET title = $1, field = $2, description = $3, required_skills = $4, salary_range = $5, demand_level = $6, updated_at = $7
	          WHERE id = $8`

	result, err := r.db.Exec(query,
		career.Title,
		career.Field,
		career.Description,
		career.RequiredSkills,
		career.SalaryRange,
		career.DemandLevel,
		time.Now(),
		career.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCareerNotFound
	}

	return nil
}

func (r *careerRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM careers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCareerNotFound
	}

	return nil
}

func (r *careerRepository) Select(uc *model.UserCareer) error {
	query := `INSERT INTO user_careers (id, user_id, career_id, selected_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, uc.ID, uc.UserID, uc.CareerID, uc.SelectedAt)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrCareerAlreadySelected
		}
	}

	return err
}

func (r *careerRepository) Unselect(userID, careerID string) error {
	result, err := r.db.Exec(`DELETE FROM user_careers WHERE user_id = $1 AND career_id = $2`, userID, careerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCareerNotFound
	}

	return nil
}

func (r *careerRepository) SelectedByUser(userID string) ([]*model.Career, error) {
	var careers []*model.Career
	query := `SELECT c.* FROM careers c
	          JOIN user_careers uc ON uc.career_id = c.id
	          WHERE uc.user_id = $1
	          ORDER BY uc.selected_at DESC`

	err := r.db.Select(&careers, query, userID)
	return careers, err
}
