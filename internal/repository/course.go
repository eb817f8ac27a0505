package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

type CourseRepository interface {
	Create(course *model.Course) error
	ByID(id string) (*model.Course, error)
	List(opts CatalogListOptions) ([]*model.Course, int, error)
	Search(q string) ([]*model.Course, error)
	Delete(id string) error

	Enroll(uc *model.UserCourse) error
	EnrollmentByID(userID, id string) (*model.UserCourse, error)
	EnrollmentsByUser(userID string) ([]*model.UserCourse, error)
	Complete(userID, id string, completedAt time.Time) error

	CountStartedBetween(userID string, from, to time.Time) (int, error)
	CompletedHoursBetween(userID string, from, to time.Time) (float64, error)
}

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	query := `INSERT INTO courses (id, title, provider, url, duration_hours, description, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		course.ID,
		course.Title,
		course.Provider,
		course.URL,
		course.DurationHours,
		course.Description,
		course.CreatedAt,
	)

	return err
}

func (r *courseRepository) ByID(id string) (*model.Course, error) {
	course := &model.Course{}
	err := r.db.Get(course, `SELECT * FROM courses WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}

	return course, err
}

func (r *courseRepository) List(opts CatalogListOptions) ([]*model.Course, int, error) {
	where := `WHERE 1=1`
	args := []any{}

	if opts.Search != "" {
		args = append(args, likePattern(opts.Search))
		p := itoa(len(args))
		where += ` AND (LOWER(title) LIKE $` + p + ` ESCAPE '\' OR LOWER(provider) LIKE $` + p + ` ESCAPE '\')`
	}

	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM courses `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT * FROM courses ` + where +
		` ORDER BY title ASC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	var courses []*model.Course
	err = r.db.Select(&courses, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (r *courseRepository) Search(q string) ([]*model.Course, error) {
	var courses []*model.Course
	pattern := likePattern(q)
	query := `SELECT * FROM courses
	          WHERE LOWER(title) LIKE $1 ESCAPE '\' OR LOWER(provider) LIKE $1 ESCAPE '\'
	          ORDER BY title ASC LIMIT 20`

	err := r.db.Select(&courses, query, pattern)
	return courses, err
}

func (r *courseRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) Enroll(uc *model.UserCourse) error {
	query := `INSERT INTO user_courses (id, user_id, course_id, status, started_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, uc.ID, uc.UserID, uc.CourseID, uc.Status, uc.StartedAt)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrAlreadyEnrolled
		}
	}

	return err
}

const userCourseSelect = `
	SELECT uc.*, c.title AS course_title, c.provider, c.duration_hours
	FROM user_courses uc
	JOIN courses c ON c.id = uc.course_id
`

func (r *courseRepository) EnrollmentByID(userID, id string) (*model.UserCourse, error) {
	uc := &model.UserCourse{}
	query := userCourseSelect + ` WHERE uc.id = $1 AND uc.user_id = $2`

	err := r.db.Get(uc, query, id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}

	return uc, err
}

func (r *courseRepository) EnrollmentsByUser(userID string) ([]*model.UserCourse, error) {
	var enrollments []*model.UserCourse
	query := userCourseSelect + ` WHERE uc.user_id = $1 ORDER BY uc.started_at DESC`

	err := r.db.Select(&enrollments, query, userID)
	return enrollments, err
}

func (r *courseRepository) Complete(userID, id string, completedAt time.Time) error {
	query := `UPDATE user_courses SET status = $1, completed_at = $2 WHERE id = $3 AND user_id = $4 AND status != $1`

	result, err := r.db.Exec(query, model.CourseStatusCompleted, completedAt, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}

func (r *courseRepository) CountStartedBetween(userID string, from, to time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM user_courses WHERE user_id = $1 AND started_at >= $2 AND started_at < $3`
	err := r.db.Get(&count, query, userID, from, to)
	return count, err
}

// CompletedHoursBetween sums the catalog duration of courses the user
// finished inside the window; this feeds the evaluation's learning score.
func (r *courseRepository) CompletedHoursBetween(userID string, from, to time.Time) (float64, error) {
	var hours float64
	query := `SELECT COALESCE(SUM(c.duration_hours), 0)
	          FROM user_courses uc
	          JOIN courses c ON c.id = uc.course_id
	          WHERE uc.user_id = $1 AND uc.completed_at IS NOT NULL AND uc.completed_at >= $2 AND uc.completed_at < $3`

	err := r.db.Get(&hours, query, userID, from, to)
	return hours, err
}
