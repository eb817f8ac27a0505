package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

type UserSkillRepository interface {
	Create(us *model.UserSkill) error
	ByID(userID, id string) (*model.UserSkill, error)
	ByUser(userID string) ([]*model.UserSkill, error)
	Update(us *model.UserSkill) error
	Delete(userID, id string) error

	TotalXP(userID string) (int, error)
	CountAddedBetween(userID string, from, to time.Time) (int, error)
	CountImprovedBetween(userID string, from, to time.Time) (int, error)
	CountByUser(userID string) (int, error)
}

type userSkillRepository struct {
	db *sqlx.DB
}

func NewUserSkillRepository(db *sqlx.DB) UserSkillRepository {
	return &userSkillRepository{db: db}
}

func (r *userSkillRepository) Create(us *model.UserSkill) error {
	query := `INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, progress_percentage, hours_practiced, xp, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		us.ID,
		us.UserID,
		us.SkillID,
		us.ProficiencyLevel,
		us.ProgressPercentage,
		us.HoursPracticed,
		us.XP,
		us.CreatedAt,
		us.UpdatedAt,
	)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrSkillAlreadyAdded
		}
	}

	return err
}

const userSkillSelect = `
	SELECT us.*, s.name AS skill_name, s.category AS skill_category
	FROM user_skills us
	JOIN skills s ON s.id = us.skill_id
`

func (r *userSkillRepository) ByID(userID, id string) (*model.UserSkill, error) {
	us := &model.UserSkill{}
	query := userSkillSelect + ` WHERE us.id = $1 AND us.user_id = $2`

	err := r.db.Get(us, query, id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrUserSkillNotFound
	}

	return us, err
}

func (r *userSkillRepository) ByUser(userID string) ([]*model.UserSkill, error) {
	var skills []*model.UserSkill
	query := userSkillSelect + ` WHERE us.user_id = $1 ORDER BY us.xp DESC, s.name ASC`

	err := r.db.Select(&skills, query, userID)
	return skills, err
}

func (r *userSkillRepository) Update(us *model.UserSkill) error {
	query := `UPDATE user_skills
	          SET proficiency_level = $1, progress_percentage = $2, hours_practiced = $3, xp = $4, updated_at = $5
	          WHERE id = $6 AND user_id = $7`

	result, err := r.db.Exec(query,
		us.ProficiencyLevel,
		us.ProgressPercentage,
		us.HoursPracticed,
		us.XP,
		time.Now(),
		us.ID,
		us.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserSkillNotFound
	}

	return nil
}

func (r *userSkillRepository) Delete(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM user_skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserSkillNotFound
	}

	return nil
}

func (r *userSkillRepository) TotalXP(userID string) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(xp), 0) FROM user_skills WHERE user_id = $1`
	err := r.db.Get(&total, query, userID)
	return total, err
}

func (r *userSkillRepository) CountAddedBetween(userID string, from, to time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM user_skills WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`
	err := r.db.Get(&count, query, userID, from, to)
	return count, err
}

// CountImprovedBetween counts skills trained in the window that were added
// before it; a skill counts once per month regardless of sessions.
func (r *userSkillRepository) CountImprovedBetween(userID string, from, to time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM user_skills
	          WHERE user_id = $1 AND updated_at >= $2 AND updated_at < $3 AND created_at < $2`
	err := r.db.Get(&count, query, userID, from, to)
	return count, err
}

func (r *userSkillRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM user_skills WHERE user_id = $1`, userID)
	return count, err
}
