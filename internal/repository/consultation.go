package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrConsultationNotFound = errors.New("consultation not found")

type ConsultationRepository interface {
	Create(c *model.Consultation) error
	ByID(id string) (*model.Consultation, error)
	ByUser(userID string) ([]*model.Consultation, error)
	List(limit, offset int) ([]*model.Consultation, int, error)
	UpdateStatus(id, status string) error
	Cancel(userID, id string) error
}

type consultationRepository struct {
	db *sqlx.DB
}

func NewConsultationRepository(db *sqlx.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(c *model.Consultation) error {
	query := `INSERT INTO consultations (id, user_id, topic, notes, plan, status, scheduled_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		c.ID,
		c.UserID,
		c.Topic,
		c.Notes,
		c.Plan,
		c.Status,
		c.ScheduledAt,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

func (r *consultationRepository) ByID(id string) (*model.Consultation, error) {
	c := &model.Consultation{}
	err := r.db.Get(c, `SELECT * FROM consultations WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrConsultationNotFound
	}

	return c, err
}

func (r *consultationRepository) ByUser(userID string) ([]*model.Consultation, error) {
	var consultations []*model.Consultation
	query := `SELECT * FROM consultations WHERE user_id = $1 ORDER BY scheduled_at DESC`

	err := r.db.Select(&consultations, query, userID)
	return consultations, err
}

func (r *consultationRepository) List(limit, offset int) ([]*model.Consultation, int, error) {
	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM consultations`)
	if err != nil {
		return nil, 0, err
	}

	var consultations []*model.Consultation
	query := `SELECT * FROM consultations ORDER BY scheduled_at DESC LIMIT $1 OFFSET $2`

	err = r.db.Select(&consultations, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return consultations, total, nil
}

func (r *consultationRepository) UpdateStatus(id, status string) error {
	query := `UPDATE consultations SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, status, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrConsultationNotFound
	}

	return nil
}

// Cancel only moves pending or confirmed bookings; completed ones stay as is.
func (r *consultationRepository) Cancel(userID, id string) error {
	query := `UPDATE consultations SET status = $1, updated_at = $2
	          WHERE id = $3 AND user_id = $4 AND status IN ($5, $6)`

	result, err := r.db.Exec(query,
		model.ConsultationStatusCancelled,
		time.Now(),
		id,
		userID,
		model.ConsultationStatusPending,
		model.ConsultationStatusConfirmed,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrConsultationNotFound
	}

	return nil
}
