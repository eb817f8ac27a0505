package model

import "time"

// Post is a community feed entry.
type Post struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	// Joined / computed fields
	AuthorName string `db:"author_name"`
	LikeCount  int    `db:"like_count"`
	LikedByMe  bool   `db:"liked_by_me"`
}

type PostLike struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
