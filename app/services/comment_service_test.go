package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickblog/app/models"
	"quickblog/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewCommentRepository()
	service := NewCommentService(repo)
	blogID := models.NewID()

	t.Run("stored unapproved", func(t *testing.T) {
		comment, err := service.AddComment(ctx, CommentInput{Blog: blogID, Name: "Ann", Content: "Nice"})
		require.NoError(t, err)
		assert.False(t, comment.IsApproved)
		assert.False(t, comment.CreatedAt.IsZero())

		all := repo.All()
		require.Len(t, all, 1)
		assert.False(t, all[0].IsApproved)
	})

	t.Run("unknown blog accepted", func(t *testing.T) {
		_, err := service.AddComment(ctx, CommentInput{Blog: models.NewID(), Name: "Bob", Content: "Hi"})
		assert.NoError(t, err)
	})

	t.Run("store rejects missing content", func(t *testing.T) {
		_, err := service.AddComment(ctx, CommentInput{Blog: blogID, Name: "Bob"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := mock.NewCommentRepository()
		failing.Err = errors.New("connection reset")
		_, err := NewCommentService(failing).AddComment(ctx, CommentInput{Blog: blogID, Name: "a", Content: "b"})
		assert.EqualError(t, err, "connection reset")
	})
}

func TestListApproved(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewCommentRepository()
	service := NewCommentService(repo)
	blogID := models.NewID()

	base := time.Now().Add(-time.Hour)
	c1 := &models.Comment{Blog: blogID, Name: "c1", Content: "one", IsApproved: true, CreatedAt: base.Add(1 * time.Second)}
	c2 := &models.Comment{Blog: blogID, Name: "c2", Content: "two", IsApproved: true, CreatedAt: base.Add(2 * time.Second)}
	c3 := &models.Comment{Blog: blogID, Name: "c3", Content: "three", IsApproved: false, CreatedAt: base.Add(3 * time.Second)}
	for _, c := range []*models.Comment{c1, c2, c3} {
		require.NoError(t, repo.Create(ctx, c))
	}

	comments, err := service.ListApproved(ctx, blogID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, c2.ID, comments[0].ID)
	assert.Equal(t, c1.ID, comments[1].ID)

	empty, err := service.ListApproved(ctx, models.NewID())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = service.ListApproved(ctx, "bad")
	assert.Error(t, err)
}
