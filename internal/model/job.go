package model

import "time"

const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
)

type Job struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Company     string    `db:"company"`
	Location    string    `db:"location"`
	Type        string    `db:"type"`
	SalaryRange string    `db:"salary_range"`
	Description string    `db:"description"`
	PostedAt    time.Time `db:"posted_at"`
	CreatedAt   time.Time `db:"created_at"`
}

const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusAccepted  = "accepted"
)

type JobApplication struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	JobID     string    `db:"job_id"`
	Status    string    `db:"status"`
	AppliedAt time.Time `db:"applied_at"`

	// Joined fields
	JobTitle string `db:"job_title"`
	Company  string `db:"company"`
}

type SavedJob struct {
	ID      string    `db:"id"`
	UserID  string    `db:"user_id"`
	JobID   string    `db:"job_id"`
	SavedAt time.Time `db:"saved_at"`
}
