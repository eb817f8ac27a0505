package model

import "time"

// Target is a monthly goal the user sets for themselves, counted by the
// evaluation aggregator.
type Target struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Month       string     `db:"month"` // YYYY-MM
	Description string     `db:"description"`
	Achieved    bool       `db:"achieved"`
	AchievedAt  *time.Time `db:"achieved_at"`
	CreatedAt   time.Time  `db:"created_at"`
}
