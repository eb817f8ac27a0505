package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrDraftNotFound = errors.New("onboarding draft not found")

type OnboardingRepository interface {
	Upsert(draft *model.OnboardingDraft) error
	ByUserID(userID string) (*model.OnboardingDraft, error)
	Delete(userID string) error
}

type onboardingRepository struct {
	db *sqlx.DB
}

func NewOnboardingRepository(db *sqlx.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

// Upsert keeps one draft per user; saving a step overwrites the previous
// snapshot. ON CONFLICT works on both SQLite and Postgres.
func (r *onboardingRepository) Upsert(draft *model.OnboardingDraft) error {
	query := `INSERT INTO onboarding_drafts (id, user_id, current_step, answers, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (user_id) DO UPDATE
	          SET current_step = EXCLUDED.current_step, answers = EXCLUDED.answers, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(query,
		draft.ID,
		draft.UserID,
		draft.CurrentStep,
		draft.Answers,
		draft.CreatedAt,
		time.Now(),
	)

	return err
}

func (r *onboardingRepository) ByUserID(userID string) (*model.OnboardingDraft, error) {
	draft := &model.OnboardingDraft{}
	err := r.db.Get(draft, `SELECT * FROM onboarding_drafts WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}

	return draft, err
}

func (r *onboardingRepository) Delete(userID string) error {
	result, err := r.db.Exec(`DELETE FROM onboarding_drafts WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDraftNotFound
	}

	return nil
}
