package mock

import (
	"context"
	"sync"

	"quickblog/app/models"
	"quickblog/app/repositories"
)

type BlogRepository struct {
	blogs map[string]*models.Blog
	order []string
	mutex sync.RWMutex

	// Err, when set, is returned by every call.
	Err error
}

type CommentRepository struct {
	comments []*models.Comment
	mutex    sync.RWMutex

	Err error
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{
		blogs: make(map[string]*models.Blog),
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// Len reports how many blogs are stored.
func (m *BlogRepository) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.blogs)
}

// BlogRepository implementation
func (m *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if m.Err != nil {
		return m.Err
	}
	blog.BeforeCreate()
	if err := blog.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	stored := *blog
	m.blogs[blog.ID] = &stored
	m.order = append(m.order, blog.ID)
	return nil
}

func (m *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id, err := repositories.ParseID(id)
	if err != nil {
		return nil, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *blog
	return &found, nil
}

func (m *BlogRepository) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blogs := []*models.Blog{}
	for _, id := range m.order {
		if blog, exists := m.blogs[id]; exists && blog.IsPublished {
			found := *blog
			blogs = append(blogs, &found)
		}
	}
	return blogs, nil
}

func (m *BlogRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	id, err := repositories.ParseID(id)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.blogs[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

func (m *BlogRepository) TogglePublished(ctx context.Context, id string) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id, err := repositories.ParseID(id)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	blog.IsPublished = !blog.IsPublished
	found := *blog
	return &found, nil
}

// CommentRepository implementation
func (m *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	stored := *comment
	m.comments = append(m.comments, &stored)
	return nil
}

// All returns every stored comment regardless of approval.
func (m *CommentRepository) All() []*models.Comment {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	all := make([]*models.Comment, len(m.comments))
	copy(all, m.comments)
	return all
}

func (m *CommentRepository) ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	blogID, err := repositories.ParseID(blogID)
	if err != nil {
		return nil, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for _, comment := range m.comments {
		if comment.Blog == blogID && comment.IsApproved {
			found := *comment
			comments = append(comments, &found)
		}
	}
	repositories.SortNewestFirst(comments)
	return comments, nil
}
