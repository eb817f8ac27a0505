package model

import "time"

const (
	ConsultationStatusPending   = "pending"   // booked, awaiting payment
	ConsultationStatusConfirmed = "confirmed" // payment settled
	ConsultationStatusCompleted = "completed"
	ConsultationStatusCancelled = "cancelled"
)

type Consultation struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Topic       string    `db:"topic"`
	Notes       string    `db:"notes"`
	Plan        string    `db:"plan"`
	Status      string    `db:"status"`
	ScheduledAt time.Time `db:"scheduled_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
