package model

import "time"

type Certificate struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Title     string     `db:"title"`
	Issuer    string     `db:"issuer"`
	IssuedAt  *time.Time `db:"issued_at"`
	FileID    *string    `db:"file_id"` // uploaded certificate document, optional
	CreatedAt time.Time  `db:"created_at"`

	// Computed (not in database)
	FileURL string `db:"-"`
}

type Project struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	URL         string    `db:"url"`
	Featured    bool      `db:"featured"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
