package repositories

import (
	"context"
	"fmt"

	"quickblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create validates and stores a comment. The referenced blog is not checked.
func (r *BadgerCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("comment validation failed: %w", err)
	}

	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		// Save comment with blog ID in key for efficient listing
		return txn.Set(commentKey(comment.Blog, comment.ID), data)
	})
}

// ListApprovedByBlog retrieves the approved comments of a blog, newest first
func (r *BadgerCommentRepository) ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	blogID, err := ParseID(blogID)
	if err != nil {
		return nil, err
	}

	comments := []*models.Comment{}
	err = r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := commentPrefix(blogID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %w", err)
			}
			if comment.IsApproved {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	SortNewestFirst(comments)
	return comments, nil
}
