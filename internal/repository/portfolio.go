package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrProjectNotFound     = errors.New("project not found")
)

type PortfolioRepository interface {
	CreateCertificate(c *model.Certificate) error
	CertificateByID(userID, id string) (*model.Certificate, error)
	CertificatesByUser(userID string) ([]*model.Certificate, error)
	DeleteCertificate(userID, id string) error
	CountCertificates(userID string) (int, error)

	CreateProject(p *model.Project) error
	ProjectByID(userID, id string) (*model.Project, error)
	ProjectsByUser(userID string) ([]*model.Project, error)
	UpdateProject(p *model.Project) error
	DeleteProject(userID, id string) error
	CountProjects(userID string) (int, error)
	HasFeaturedProject(userID string) (bool, error)
}

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) CreateCertificate(c *model.Certificate) error {
	query := `INSERT INTO certificates (id, user_id, title, issuer, issued_at, file_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query, c.ID, c.UserID, c.Title, c.Issuer, c.IssuedAt, c.FileID, c.CreatedAt)
	return err
}

func (r *portfolioRepository) CertificateByID(userID, id string) (*model.Certificate, error) {
	c := &model.Certificate{}
	err := r.db.Get(c, `SELECT * FROM certificates WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCertificateNotFound
	}

	return c, err
}

func (r *portfolioRepository) CertificatesByUser(userID string) ([]*model.Certificate, error) {
	var certificates []*model.Certificate
	query := `SELECT * FROM certificates WHERE user_id = $1 ORDER BY issued_at DESC, created_at DESC`

	err := r.db.Select(&certificates, query, userID)
	return certificates, err
}

func (r *portfolioRepository) DeleteCertificate(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM certificates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCertificateNotFound
	}

	return nil
}

func (r *portfolioRepository) CountCertificates(userID string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM certificates WHERE user_id = $1`, userID)
	return count, err
}

func (r *portfolioRepository) CreateProject(p *model.Project) error {
	query := `INSERT INTO projects (id, user_id, title, description, url, featured, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query, p.ID, p.UserID, p.Title, p.Description, p.URL, p.Featured, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *portfolioRepository) ProjectByID(userID, id string) (*model.Project, error) {
	p := &model.Project{}
	err := r.db.Get(p, `SELECT * FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}

	return p, err
}

func (r *portfolioRepository) ProjectsByUser(userID string) ([]*model.Project, error) {
	var projects []*model.Project
	query := `SELECT * FROM projects WHERE user_id = $1 ORDER BY featured DESC, created_at DESC`

	err := r.db.Select(&projects, query, userID)
	return projects, err
}

func (r *portfolioRepository) UpdateProject(p *model.Project) error {
	query := `UPDATE projects SET title = $1, description = $2, url = $3, featured = $4, updated_at = $5
	          WHERE id = $6 AND user_id = $7`

	result, err := r.db.Exec(query, p.Title, p.Description, p.URL, p.Featured, time.Now(), p.ID, p.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *portfolioRepository) DeleteProject(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *portfolioRepository) CountProjects(userID string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM projects WHERE user_id = $1`, userID)
	return count, err
}

func (r *portfolioRepository) HasFeaturedProject(userID string) (bool, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM projects WHERE user_id = $1 AND featured = TRUE`, userID)
	return count > 0, err
}
