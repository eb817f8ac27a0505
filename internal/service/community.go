package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrPostContentRequired = errors.New("post content is required")
	ErrPostTooLong         = errors.New("post content is too long (max 2000 characters)")
)

type CommunityService struct {
	postRepo repository.PostRepository
}

func NewCommunityService(postRepo repository.PostRepository) *CommunityService {
	return &CommunityService{postRepo: postRepo}
}

func (s *CommunityService) CreatePost(userID, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrPostContentRequired
	}
	if len(content) > 2000 {
		return nil, ErrPostTooLong
	}

	post := &model.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	err := s.postRepo.Create(post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.postRepo.ByID(post.ID, userID)
}

func (s *CommunityService) Feed(viewerID string, limit, offset int) ([]*model.Post, int, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.Feed(viewerID, limit, offset)
}

// DeletePost removes the caller's own post.
func (s *CommunityService) DeletePost(userID, postID string) error {
	return s.postRepo.Delete(userID, postID)
}

// DeleteAnyPost is admin moderation; it ignores authorship.
func (s *CommunityService) DeleteAnyPost(postID string) error {
	return s.postRepo.DeleteAny(postID)
}

func (s *CommunityService) Like(userID, postID string) error {
	like := &model.PostLike{
		ID:        uuid.New().String(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	return s.postRepo.Like(like)
}

func (s *CommunityService) Unlike(userID, postID string) error {
	return s.postRepo.Unlike(userID, postID)
}
