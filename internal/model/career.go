package model

import "time"

const (
	DemandLow    = "low"
	DemandMedium = "medium"
	DemandHigh   = "high"
)

type Career struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Field          string    `db:"field"`
	Description    string    `db:"description"`
	RequiredSkills string    `db:"required_skills"` // comma-separated skill names
	SalaryRange    string    `db:"salary_range"`    // e.g. "IDR 8.000.000 - 15.000.000"
	DemandLevel    string    `db:"demand_level"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// UserCareer links a user to a career they are pursuing.
type UserCareer struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	CareerID   string    `db:"career_id"`
	SelectedAt time.Time `db:"selected_at"`
}
