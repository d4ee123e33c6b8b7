package repositories

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore is the embedded storage backend.
type BadgerStore struct {
	db       *badger.DB
	blogs    *BadgerBlogRepository
	comments *BadgerCommentRepository
}

// OpenBadger opens the badger directory at path. An empty path opens an
// in-memory database, which is what the tests use.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	return NewBadgerStore(db), nil
}

// NewBadgerStore wraps an already opened database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{
		db:       db,
		blogs:    NewBadgerBlogRepository(db),
		comments: NewBadgerCommentRepository(db),
	}
}

func (s *BadgerStore) Name() string { return "badger" }

func (s *BadgerStore) Blogs() BlogRepository { return s.blogs }

func (s *BadgerStore) Comments() CommentRepository { return s.comments }

// DB exposes the handle for maintenance commands.
func (s *BadgerStore) DB() *badger.DB { return s.db }

// Ping runs an empty read transaction.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return fmt.Errorf("badger is closed")
	}
	return s.db.View(func(txn *badger.Txn) error { return nil })
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
