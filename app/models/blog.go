package models

import "time"

// Validate checks the blog against the store's field rules.
func (b *Blog) Validate() error {
	return validate.Struct(b)
}

// BeforeCreate assigns the identifier and timestamps of a new blog.
func (b *Blog) BeforeCreate() {
	if b.ID == "" {
		b.ID = NewID()
	} else if id, ok := CanonicalID(b.ID); ok {
		b.ID = id
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// Status describes the publish state in words.
func (b *Blog) Status() string {
	if b.IsPublished {
		return "published"
	}
	return "unpublished"
}
