package services

import (
	"context"

	"quickblog/app/metrics"
	"quickblog/app/models"
	"quickblog/app/repositories"
)

// CommentInput is what a reader submits. Approval is never taken from input.
type CommentInput struct {
	Blog    string `json:"blog"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
	}
}

// AddComment stores an unapproved comment. The blog reference is not
// checked against the blog store; field rules are left to the store.
func (s *CommentService) AddComment(ctx context.Context, in CommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		Blog:       in.Blog,
		Name:       in.Name,
		Content:    in.Content,
		IsApproved: false,
	}
	err := s.commentRepo.Create(ctx, comment)
	metrics.ObserveStore("comment_create", err)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListApproved returns the approved comments of a blog, newest first.
func (s *CommentService) ListApproved(ctx context.Context, blogID string) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListApprovedByBlog(ctx, blogID)
	metrics.ObserveStore("comment_list", err)
	return comments, err
}
