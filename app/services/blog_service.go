package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"quickblog/app/images"
	"quickblog/app/logger"
	"quickblog/app/metrics"
	"quickblog/app/models"
	"quickblog/app/repositories"
)

// BlogImageFolder is where cover images are stored on the image host.
const BlogImageFolder = "/blogs"

const (
	msgAllFieldsRequired = "All fields are required"
	msgBlogNotFound      = "Blog not found"
)

// ImageHost stores uploaded images and serves transformed delivery URLs.
type ImageHost interface {
	Upload(ctx context.Context, file []byte, fileName, folder string) (*images.UploadResult, error)
	URL(path string, transformations ...images.Transformation) (string, error)
}

// BlogInput is the client supplied part of a new blog.
type BlogInput struct {
	Title       string `json:"title" validate:"required"`
	SubTitle    string `json:"subTitle"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	IsPublished bool   `json:"isPublished"`
}

// ImageUpload is an uploaded cover image.
type ImageUpload struct {
	FileName string
	Content  io.Reader
}

// BlogService handles business logic for blog posts
type BlogService struct {
	blogRepo repositories.BlogRepository
	images   ImageHost
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository, imageHost ImageHost) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		images:   imageHost,
	}
}

// CreateBlog uploads the cover image and stores a new blog pointing at its
// optimized delivery URL. Nothing is uploaded or stored when a required
// field or the image is missing.
func (s *BlogService) CreateBlog(ctx context.Context, in BlogInput, image *ImageUpload) (*models.Blog, error) {
	if err := models.Validator().Struct(in); err != nil || image == nil || image.Content == nil {
		return nil, validationError(msgAllFieldsRequired)
	}

	data, err := io.ReadAll(image.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	start := time.Now()
	uploaded, err := s.images.Upload(ctx, data, image.FileName, BlogImageFolder)
	metrics.ImageUploadDuration.Observe(time.Since(start).Seconds())
	metrics.ImageUploadsTotal.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		logger.ErrorContext(ctx, "image upload failed", "file", image.FileName, "error", err)
		return nil, err
	}
	imageURL, err := s.images.URL(uploaded.FilePath, images.OptimizedCover)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build image url", "path", uploaded.FilePath, "error", err)
		return nil, err
	}

	blog := &models.Blog{
		Title:       in.Title,
		SubTitle:    in.SubTitle,
		Description: in.Description,
		Category:    in.Category,
		Image:       imageURL,
		IsPublished: in.IsPublished,
	}
	err = s.blogRepo.Create(ctx, blog)
	metrics.ObserveStore("blog_create", err)
	if err != nil {
		logger.ErrorContext(ctx, "failed to store blog", "error", err)
		return nil, err
	}
	return blog, nil
}

// ListPublished returns every published blog
func (s *BlogService) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.blogRepo.ListPublished(ctx)
	metrics.ObserveStore("blog_list", err)
	return blogs, err
}

// GetBlog retrieves a blog by ID
func (s *BlogService) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	metrics.ObserveStore("blog_get", err)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return blog, nil
}

// DeleteBlog deletes a blog. Its comments are kept. An absent id matches no
// blog rather than being malformed.
func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	if id == "" {
		return notFoundError(msgBlogNotFound)
	}
	err := s.blogRepo.Delete(ctx, id)
	metrics.ObserveStore("blog_delete", err)
	return mapNotFound(err)
}

// TogglePublish flips the publish state of a blog and returns the stored result.
func (s *BlogService) TogglePublish(ctx context.Context, id string) (*models.Blog, error) {
	if id == "" {
		return nil, notFoundError(msgBlogNotFound)
	}
	blog, err := s.blogRepo.TogglePublished(ctx, id)
	metrics.ObserveStore("blog_toggle", err)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return blog, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFoundError(msgBlogNotFound)
	}
	return err
}
