package model

import "time"

// OnboardingDraft is the persisted state of the 10-step onboarding wizard.
// The draft survives disconnects and failed submits; it is deleted only
// after a fully successful submit.
type OnboardingDraft struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	CurrentStep int       `db:"current_step"` // 1..10
	Answers     string    `db:"answers"`      // JSON object keyed by field name
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
