package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quickblog/app/images"
	"quickblog/app/models"
	"quickblog/app/repositories"
	"quickblog/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageHost struct {
	uploads   int
	lastName  string
	lastFile  []byte
	lastDir   string
	uploadErr error
	urlErr    error
}

func (f *fakeImageHost) Upload(ctx context.Context, file []byte, fileName, folder string) (*images.UploadResult, error) {
	f.uploads++
	f.lastName, f.lastFile, f.lastDir = fileName, file, folder
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &images.UploadResult{FileID: "f1", Name: fileName, FilePath: folder + "/" + fileName}, nil
}

func (f *fakeImageHost) URL(path string, transformations ...images.Transformation) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	tr := make([]string, 0, len(transformations))
	for _, t := range transformations {
		tr = append(tr, t.String())
	}
	return "https://ik.example.com/tr:" + strings.Join(tr, ":") + path, nil
}

func validInput() BlogInput {
	return BlogInput{
		Title:       "Hello",
		SubTitle:    "World",
		Description: "<p>body</p>",
		Category:    "Lifestyle",
		IsPublished: true,
	}
}

func cover() *ImageUpload {
	return &ImageUpload{FileName: "cover.jpg", Content: strings.NewReader("jpeg-bytes")}
}

func setupBlogService() (*BlogService, *mock.BlogRepository, *fakeImageHost) {
	repo := mock.NewBlogRepository()
	host := &fakeImageHost{}
	return NewBlogService(repo, host), repo, host
}

func TestCreateBlog(t *testing.T) {
	ctx := context.Background()

	t.Run("stores blog with delivery url", func(t *testing.T) {
		service, repo, host := setupBlogService()

		blog, err := service.CreateBlog(ctx, validInput(), cover())
		require.NoError(t, err)

		assert.Equal(t, 1, repo.Len())
		assert.Equal(t, 1, host.uploads)
		assert.Equal(t, "cover.jpg", host.lastName)
		assert.Equal(t, []byte("jpeg-bytes"), host.lastFile)
		assert.Equal(t, BlogImageFolder, host.lastDir)
		assert.Equal(t, "https://ik.example.com/tr:f-webp,q-auto,w-1280/blogs/cover.jpg", blog.Image)
		assert.True(t, blog.IsPublished)
		assert.True(t, models.IsObjectID(blog.ID))

		stored, err := repo.GetByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", stored.Title)
		assert.Equal(t, "World", stored.SubTitle)
	})

	t.Run("publish flag follows input", func(t *testing.T) {
		service, _, _ := setupBlogService()
		in := validInput()
		in.IsPublished = false

		blog, err := service.CreateBlog(ctx, in, cover())
		require.NoError(t, err)
		assert.False(t, blog.IsPublished)
	})

	missing := []struct {
		name   string
		mutate func(in *BlogInput)
		image  *ImageUpload
	}{
		{"title", func(in *BlogInput) { in.Title = "" }, cover()},
		{"description", func(in *BlogInput) { in.Description = "" }, cover()},
		{"category", func(in *BlogInput) { in.Category = "" }, cover()},
		{"image", func(in *BlogInput) {}, nil},
	}
	for _, tt := range missing {
		t.Run("missing "+tt.name, func(t *testing.T) {
			service, repo, host := setupBlogService()
			in := validInput()
			tt.mutate(&in)

			_, err := service.CreateBlog(ctx, in, tt.image)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "All fields are required", err.Error())
			assert.Equal(t, 0, repo.Len())
			assert.Equal(t, 0, host.uploads)
		})
	}

	t.Run("upload failure stores nothing", func(t *testing.T) {
		service, repo, host := setupBlogService()
		host.uploadErr = errors.New("imagekit upload failed: quota exceeded")

		_, err := service.CreateBlog(ctx, validInput(), cover())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("url failure stores nothing", func(t *testing.T) {
		service, repo, host := setupBlogService()
		host.urlErr = errors.New("failed to build image url")

		_, err := service.CreateBlog(ctx, validInput(), cover())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.Equal(t, 1, host.uploads)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("store failure is internal", func(t *testing.T) {
		service, repo, _ := setupBlogService()
		repo.Err = errors.New("disk full")

		_, err := service.CreateBlog(ctx, validInput(), cover())
		require.Error(t, err)
		assert.Equal(t, "disk full", err.Error())
	})
}

func TestBlogLifecycle(t *testing.T) {
	ctx := context.Background()
	service, _, _ := setupBlogService()

	published, err := service.CreateBlog(ctx, validInput(), cover())
	require.NoError(t, err)
	draftIn := validInput()
	draftIn.IsPublished = false
	draft, err := service.CreateBlog(ctx, draftIn, cover())
	require.NoError(t, err)

	t.Run("list only published", func(t *testing.T) {
		blogs, err := service.ListPublished(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, 1)
		assert.Equal(t, published.ID, blogs[0].ID)
	})

	t.Run("get existing and missing", func(t *testing.T) {
		got, err := service.GetBlog(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)

		_, err = service.GetBlog(ctx, models.NewID())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "Blog not found", err.Error())
	})

	t.Run("malformed id is internal", func(t *testing.T) {
		_, err := service.GetBlog(ctx, "xyz")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrInvalidID)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("toggle twice restores state", func(t *testing.T) {
		blog, err := service.TogglePublish(ctx, draft.ID)
		require.NoError(t, err)
		assert.True(t, blog.IsPublished)

		blog, err = service.TogglePublish(ctx, draft.ID)
		require.NoError(t, err)
		assert.False(t, blog.IsPublished)

		_, err = service.TogglePublish(ctx, models.NewID())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		require.NoError(t, service.DeleteBlog(ctx, published.ID))

		_, err := service.GetBlog(ctx, published.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		err = service.DeleteBlog(ctx, published.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("absent id matches no blog", func(t *testing.T) {
		_, err := service.TogglePublish(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "Blog not found", err.Error())

		err = service.DeleteBlog(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
