package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrWellnessLogNotFound = errors.New("wellness log not found")

type WellnessRepository interface {
	Create(log *model.WellnessLog) error
	ByUser(userID string, limit int) ([]*model.WellnessLog, error)
	Between(userID string, from, to time.Time) ([]*model.WellnessLog, error)
	Latest(userID string) (*model.WellnessLog, error)
}

type wellnessRepository struct {
	db *sqlx.DB
}

func NewWellnessRepository(db *sqlx.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

func (r *wellnessRepository) Create(log *model.WellnessLog) error {
	query := `INSERT INTO wellness_logs (id, user_id, gad7_score, severity, mood, answers, needs_follow_up, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		log.ID,
		log.UserID,
		log.GAD7Score,
		log.Severity,
		log.Mood,
		log.Answers,
		log.NeedsFollowUp,
		log.CreatedAt,
	)

	return err
}

func (r *wellnessRepository) ByUser(userID string, limit int) ([]*model.WellnessLog, error) {
	var logs []*model.WellnessLog
	query := `SELECT * FROM wellness_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	err := r.db.Select(&logs, query, userID, limit)
	return logs, err
}

func (r *wellnessRepository) Between(userID string, from, to time.Time) ([]*model.WellnessLog, error) {
	var logs []*model.WellnessLog
	query := `SELECT * FROM wellness_logs WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at ASC`

	err := r.db.Select(&logs, query, userID, from, to)
	return logs, err
}

func (r *wellnessRepository) Latest(userID string) (*model.WellnessLog, error) {
	log := &model.WellnessLog{}
	query := `SELECT * FROM wellness_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	err := r.db.Get(log, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrWellnessLogNotFound
	}

	return log, err
}
