package repositories

import (
	"context"

	"quickblog/app/models"
)

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	ListPublished(ctx context.Context) ([]*models.Blog, error)
	Delete(ctx context.Context, id string) error
	// TogglePublished flips IsPublished in one atomic step and returns the stored result.
	TogglePublished(ctx context.Context, id string) (*models.Blog, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// ListApprovedByBlog returns approved comments of a blog, newest first.
	ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error)
}

// Store bundles the repositories of one storage backend.
type Store interface {
	Name() string
	Blogs() BlogRepository
	Comments() CommentRepository
	Ping(ctx context.Context) error
	Close() error
}
