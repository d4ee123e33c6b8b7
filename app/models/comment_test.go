package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	blogID := NewID()

	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:        NewID(),
				Blog:      blogID,
				Name:      "John Doe",
				Content:   "Great post",
				CreatedAt: time.Now(),
			},
		},
		{
			name: "missing name",
			comment: &Comment{
				ID:        NewID(),
				Blog:      blogID,
				Content:   "Great post",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "empty content",
			comment: &Comment{
				ID:        NewID(),
				Blog:      blogID,
				Name:      "John Doe",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "malformed blog reference",
			comment: &Comment{
				ID:        NewID(),
				Blog:      "nope",
				Name:      "John Doe",
				Content:   "Great post",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{
		Blog:    NewID(),
		Name:    "John Doe",
		Content: "Test Comment",
	}

	assert.True(t, comment.CreatedAt.IsZero())
	comment.BeforeCreate()
	assert.False(t, comment.CreatedAt.IsZero())
	assert.True(t, IsObjectID(comment.ID))
	assert.False(t, comment.IsApproved)
}

func TestCommentBeforeCreateLowercasesBlogReference(t *testing.T) {
	blogID := NewID()
	comment := &Comment{
		Blog:    strings.ToUpper(blogID),
		Name:    "John Doe",
		Content: "Shouting id",
	}

	comment.BeforeCreate()
	assert.Equal(t, blogID, comment.Blog)

	malformed := &Comment{Blog: "nope"}
	malformed.BeforeCreate()
	assert.Equal(t, "nope", malformed.Blog, "malformed references are left for Validate")
}
