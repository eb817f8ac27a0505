package repository

import (
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrTargetNotFound = errors.New("target not found")

type TargetRepository interface {
	Create(target *model.Target) error
	ByUserAndMonth(userID, month string) ([]*model.Target, error)
	MarkAchieved(userID, id string, achievedAt time.Time) error
	Delete(userID, id string) error
	CountByMonth(userID, month string) (set int, achieved int, err error)
}

type targetRepository struct {
	db *sqlx.DB
}

func NewTargetRepository(db *sqlx.DB) TargetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) Create(target *model.Target) error {
	query := `INSERT INTO targets (id, user_id, month, description, achieved, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		target.ID,
		target.UserID,
		target.Month,
		target.Description,
		target.Achieved,
		target.CreatedAt,
	)

	return err
}

func (r *targetRepository) ByUserAndMonth(userID, month string) ([]*model.Target, error) {
	var targets []*model.Target
	query := `SELECT * FROM targets WHERE user_id = $1 AND month = $2 ORDER BY created_at ASC`

	err := r.db.Select(&targets, query, userID, month)
	return targets, err
}

func (r *targetRepository) MarkAchieved(userID, id string, achievedAt time.Time) error {
	query := `UPDATE targets SET achieved = TRUE, achieved_at = $1 WHERE id = $2 AND user_id = $3`

	result, err := r.db.Exec(query, achievedAt, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTargetNotFound
	}

	return nil
}

func (r *targetRepository) Delete(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM targets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTargetNotFound
	}

	return nil
}

func (r *targetRepository) CountByMonth(userID, month string) (int, int, error) {
	var counts struct {
		Set      int `db:"set_count"`
		Achieved int `db:"achieved_count"`
	}

	query := `SELECT COUNT(*) AS set_count, COALESCE(SUM(CASE WHEN achieved THEN 1 ELSE 0 END), 0) AS achieved_count
	          FROM targets WHERE user_id = $1 AND month = $2`

	err := r.db.Get(&counts, query, userID, month)
	return counts.Set, counts.Achieved, err
}
