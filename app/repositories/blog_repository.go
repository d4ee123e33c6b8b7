package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds how often a toggle is replayed after badger
// reports a write conflict with a concurrent transaction.
const maxConflictRetries = 5

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// Create validates and stores a new blog
func (r *BadgerBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	blog.BeforeCreate()
	if err := blog.Validate(); err != nil {
		return fmt.Errorf("blog validation failed: %w", err)
	}

	data, err := marshalEntity(blog)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := blogKey(blog.ID)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("blog %s already exists", blog.ID)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

// GetByID retrieves a blog by ID
func (r *BadgerBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var blog models.Blog
	err = r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blogKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &blog)
		})
	})

	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// ListPublished retrieves every published blog in key order
func (r *BadgerBlogRepository) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	blogs := []*models.Blog{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BlogKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var blog models.Blog
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &blog)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal blog: %w", err)
			}
			if blog.IsPublished {
				blogs = append(blogs, &blog)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Delete deletes a blog by ID. Comments of the blog are left in place.
func (r *BadgerBlogRepository) Delete(ctx context.Context, id string) error {
	id, err := ParseID(id)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := blogKey(id)

		// Verify blog exists
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// TogglePublished flips the publish flag inside one read-write transaction.
// Badger aborts the commit when a concurrent transaction wrote the same key,
// in which case the whole read-flip-write is replayed.
func (r *BadgerBlogRepository) TogglePublished(ctx context.Context, id string) (*models.Blog, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		var blog models.Blog
		err := r.db.Update(func(txn *badger.Txn) error {
			key := blogKey(id)
			item, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &blog)
			}); err != nil {
				return err
			}

			blog.IsPublished = !blog.IsPublished
			blog.UpdatedAt = time.Now().UTC()

			data, err := marshalEntity(&blog)
			if err != nil {
				return err
			}
			return txn.Set(key, data)
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		return &blog, nil
	}
}
