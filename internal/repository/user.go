package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

// UserListOptions filter and paginate the admin user listing.
type UserListOptions struct {
	Search string // matches email, case-insensitive substring
	Role   string // empty = all roles
	Limit  int
	Offset int
}

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	List(opts UserListOptions) ([]*model.User, int, error)
	Update(user *model.User) error
	UpdateRole(id, role string) error
	Delete(id string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, email, password_hash, role, email_verified_at, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, user.ID, user.Email, user.PasswordHash, user.Role, user.EmailVerifiedAt, user.CreatedAt)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) List(opts UserListOptions) ([]*model.User, int, error) {
	where := `WHERE 1=1`
	args := []any{}

	if opts.Search != "" {
		args = append(args, likePattern(opts.Search))
		where += ` AND LOWER(email) LIKE $` + itoa(len(args)) + ` ESCAPE '\'`
	}
	if opts.Role != "" {
		args = append(args, opts.Role)
		where += ` AND role = $` + itoa(len(args))
	}

	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM users `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT * FROM users ` + where +
		` ORDER BY created_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	var users []*model.User
	err = r.db.Select(&users, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) Update(user *model.User) error {
	query := `UPDATE users SET email = $1, password_hash = $2, role = $3, pending_email = $4, email_verified_at = $5 WHERE id = $6`

	_, err := r.db.Exec(query, user.Email, user.PasswordHash, user.Role, user.PendingEmail, user.EmailVerifiedAt, user.ID)
	return err
}

func (r *userRepository) UpdateRole(id, role string) error {
	result, err := r.db.Exec(`UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
