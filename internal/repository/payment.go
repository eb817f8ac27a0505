package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(p *model.Payment) error
	ByOrderID(orderID string) (*model.Payment, error)
	ByUser(userID string) ([]*model.Payment, error)
	List(limit, offset int) ([]*model.Payment, int, error)
	UpdateStatus(orderID, status string) error
}

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(p *model.Payment) error {
	query := `INSERT INTO payments (id, order_id, user_id, consultation_id, plan, amount, status, snap_token, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		p.ID,
		p.OrderID,
		p.UserID,
		p.ConsultationID,
		p.Plan,
		p.Amount,
		p.Status,
		p.SnapToken,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

func (r *paymentRepository) ByOrderID(orderID string) (*model.Payment, error) {
	p := &model.Payment{}
	err := r.db.Get(p, `SELECT * FROM payments WHERE order_id = $1`, orderID)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}

	return p, err
}

func (r *paymentRepository) ByUser(userID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	query := `SELECT * FROM payments WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&payments, query, userID)
	return payments, err
}

func (r *paymentRepository) List(limit, offset int) ([]*model.Payment, int, error) {
	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM payments`)
	if err != nil {
		return nil, 0, err
	}

	var payments []*model.Payment
	query := `SELECT * FROM payments ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	err = r.db.Select(&payments, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) UpdateStatus(orderID, status string) error {
	query := `UPDATE payments SET status = $1, updated_at = $2 WHERE order_id = $3`

	result, err := r.db.Exec(query, status, time.Now(), orderID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
