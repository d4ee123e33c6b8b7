package models

import "time"

// Validate checks the comment against the store's field rules.
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate assigns the identifier and timestamps of a new comment.
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = NewID()
	} else if id, ok := CanonicalID(c.ID); ok {
		c.ID = id
	}
	if blog, ok := CanonicalID(c.Blog); ok {
		c.Blog = blog
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
