package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrUserSkillNotFound = errors.New("user skill not found")
	ErrSkillAlreadyAdded = errors.New("skill already added")
)

type SkillRepository interface {
	Create(skill *model.Skill) error
	ByID(id string) (*model.Skill, error)
	List(opts CatalogListOptions) ([]*model.Skill, int, error)
	Search(q string) ([]*model.Skill, error)
	Update(skill *model.Skill) error
	Delete(id string) error
}

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *model.Skill) error {
	query := `INSERT INTO skills (id, name, category, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, skill.ID, skill.Name, skill.Category, skill.Description, skill.CreatedAt, skill.UpdatedAt)
	return err
}

func (r *skillRepository) ByID(id string) (*model.Skill, error) {
	skill := &model.Skill{}
	err := r.db.Get(skill, `SELECT * FROM skills WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrSkillNotFound
	}

	return skill, err
}

func (r *skillRepository) List(opts CatalogListOptions) ([]*model.Skill, int, error) {
	where := `WHERE 1=1`
	args := []any{}

	if opts.Search != "" {
		args = append(args, likePattern(opts.Search))
		p := itoa(len(args))
		where += ` AND (LOWER(name) LIKE $` + p + ` ESCAPE '\' OR LOWER(category) LIKE $` + p + ` ESCAPE '\')`
	}

	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM skills `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT * FROM skills ` + where +
		` ORDER BY name ASC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	var skills []*model.Skill
	err = r.db.Select(&skills, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *skillRepository) Search(q string) ([]*model.Skill, error) {
	var skills []*model.Skill
	pattern := likePattern(q)
	query := `SELECT * FROM skills
	          WHERE LOWER(name) LIKE $1 ESCAPE '\' OR LOWER(category) LIKE $1 ESCAPE '\'
	          ORDER BY name ASC LIMIT 20`

	err := r.db.Select(&skills, query, pattern)
	return skills, err
}

func (r *skillRepository) Update(skill *model.Skill) error {
	query := `UPDATE skills SET name = $1, category = $2, description = $3, updated_at = $4 WHERE id = $5`

	result, err := r.db.Exec(query, skill.Name, skill.Category, skill.Description, time.Now(), skill.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSkillNotFound
	}

	return nil
}

func (r *skillRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSkillNotFound
	}

	return nil
}
