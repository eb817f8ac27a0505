package model

import "time"

const (
	PaymentStatusPending = "pending"
	PaymentStatusSettled = "settled"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

// Payment records a Midtrans Snap transaction. The Snap token is issued
// before the row exists, so writing this record must stay non-fatal.
type Payment struct {
	ID             string    `db:"id"`
	OrderID        string    `db:"order_id"`
	UserID         string    `db:"user_id"`
	ConsultationID *string   `db:"consultation_id"`
	Plan           string    `db:"plan"`
	Amount         int64     `db:"amount"` // IDR, no decimals
	Status         string    `db:"status"`
	SnapToken      string    `db:"snap_token"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
