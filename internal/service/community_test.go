package service

import (
	"strings"
	"testing"

	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostValidatesContent(t *testing.T) {
	svc := NewCommunityService(newMockPostRepo())

	_, err := svc.CreatePost("u1", "   ")
	assert.ErrorIs(t, err, ErrPostContentRequired)

	_, err = svc.CreatePost("u1", strings.Repeat("a", 2001))
	assert.ErrorIs(t, err, ErrPostTooLong)

	post, err := svc.CreatePost("u1", "  just passed my GAD-7 milestone  ")
	require.NoError(t, err)
	assert.Equal(t, "just passed my GAD-7 milestone", post.Content)
}

func TestLikeIsIdempotentPerUser(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewCommunityService(repo)

	post, err := svc.CreatePost("u1", "first post")
	require.NoError(t, err)

	require.NoError(t, svc.Like("u2", post.ID))
	assert.ErrorIs(t, svc.Like("u2", post.ID), repository.ErrAlreadyLiked)

	// Another user can still like it
	require.NoError(t, svc.Like("u3", post.ID))

	viewed, err := repo.ByID(post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, viewed.LikeCount)
	assert.True(t, viewed.LikedByMe)
}

func TestUnlikeRequiresExistingLike(t *testing.T) {
	svc := NewCommunityService(newMockPostRepo())

	post, err := svc.CreatePost("u1", "hello")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Unlike("u2", post.ID), repository.ErrLikeNotFound)

	require.NoError(t, svc.Like("u2", post.ID))
	assert.NoError(t, svc.Unlike("u2", post.ID))
}

func TestDeletePostScopedToAuthor(t *testing.T) {
	svc := NewCommunityService(newMockPostRepo())

	post, err := svc.CreatePost("u1", "mine")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost("u2", post.ID), repository.ErrPostNotFound)

	// Moderation ignores authorship
	assert.NoError(t, svc.DeleteAnyPost(post.ID))
}

func TestFeedClampsPaging(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewCommunityService(repo)

	for i := 0; i < 25; i++ {
		_, err := svc.CreatePost("u1", "post")
		require.NoError(t, err)
	}

	posts, total, err := svc.Feed("u1", 0, -5)
	require.NoError(t, err)
	assert.Len(t, posts, 20)
	assert.Equal(t, 25, total)
}
