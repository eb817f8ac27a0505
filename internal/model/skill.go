package model

import "time"

type Skill struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"` // e.g. "technical", "soft", "language"
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// UserSkill is a user's declared proficiency in a skill. Progress only
// moves upward; training adds hours and progress but never removes them.
type UserSkill struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	SkillID            string    `db:"skill_id"`
	ProficiencyLevel   string    `db:"proficiency_level"` // scoring.Proficiency* labels
	ProgressPercentage int       `db:"progress_percentage"`
	HoursPracticed     float64   `db:"hours_practiced"`
	XP                 int       `db:"xp"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`

	// Joined fields (not columns of user_skills)
	SkillName     string `db:"skill_name"`
	SkillCategory string `db:"skill_category"`
}
