package model

import "time"

type Profile struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	University     string    `db:"university"`
	Major          string    `db:"major"`
	GraduationYear *int      `db:"graduation_year"`
	Bio            string    `db:"bio"`
	Interests      string    `db:"interests"` // comma-separated interest tags
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
