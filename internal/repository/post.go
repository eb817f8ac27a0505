package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrAlreadyLiked = errors.New("post already liked")
	ErrLikeNotFound = errors.New("like not found")
)

type PostRepository interface {
	Create(post *model.Post) error
	ByID(id, viewerID string) (*model.Post, error)
	Feed(viewerID string, limit, offset int) ([]*model.Post, int, error)
	Delete(userID, id string) error
	DeleteAny(id string) error

	Like(like *model.PostLike) error
	Unlike(userID, postID string) error
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	query := `INSERT INTO posts (id, user_id, content, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, post.ID, post.UserID, post.Content, post.CreatedAt)
	return err
}

const postSelect = `
	SELECT p.*,
	       COALESCE(pr.name, '') AS author_name,
	       (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id) AS like_count,
	       EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = $1) AS liked_by_me
	FROM posts p
	LEFT JOIN profiles pr ON pr.user_id = p.user_id
`

func (r *postRepository) ByID(id, viewerID string) (*model.Post, error) {
	post := &model.Post{}
	query := postSelect + ` WHERE p.id = $2`

	err := r.db.Get(post, query, viewerID, id)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}

	return post, err
}

func (r *postRepository) Feed(viewerID string, limit, offset int) ([]*model.Post, int, error) {
	var total int
	err := r.db.Get(&total, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	query := postSelect + ` ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`

	err = r.db.Select(&posts, query, viewerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) Delete(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeleteAny removes a post regardless of author. Admin moderation only.
func (r *postRepository) DeleteAny(id string) error {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) Like(like *model.PostLike) error {
	query := `INSERT INTO post_likes (id, post_id, user_id, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, like.ID, like.PostID, like.UserID, like.CreatedAt)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrAlreadyLiked
		}
		if strings.Contains(errStr, "FOREIGN KEY constraint failed") || strings.Contains(errStr, "foreign key constraint") {
			return ErrPostNotFound
		}
	}

	return err
}

func (r *postRepository) Unlike(userID, postID string) error {
	result, err := r.db.Exec(`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLikeNotFound
	}

	return nil
}
