package model

import "time"

type Course struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Provider      string    `db:"provider"`
	URL           string    `db:"url"`
	DurationHours float64   `db:"duration_hours"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	CourseStatusStarted   = "started"
	CourseStatusCompleted = "completed"
)

type UserCourse struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	CourseID    string     `db:"course_id"`
	Status      string     `db:"status"`
	StartedAt   time.Time  `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`

	// Joined fields
	CourseTitle   string  `db:"course_title"`
	Provider      string  `db:"provider"`
	DurationHours float64 `db:"duration_hours"`
}
