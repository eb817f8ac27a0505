package model

import "time"

// WellnessLog is one completed GAD-7 questionnaire. Logs are append-only;
// a submitted check-in is never edited.
type WellnessLog struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	GAD7Score     int       `db:"gad7_score"` // 0..21
	Severity      string    `db:"severity"`
	Mood          string    `db:"mood"`    // free-form mood label picked by the user
	Answers       string    `db:"answers"` // JSON array of the 7 raw answers
	NeedsFollowUp bool      `db:"needs_follow_up"`
	CreatedAt     time.Time `db:"created_at"`
}
