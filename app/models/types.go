package models

import "time"

// Blog represents a blog post. Image holds the delivery URL of the cover image,
// never the raw bytes.
type Blog struct {
	ID          string    `json:"_id" validate:"required,objectid"`
	Title       string    `json:"title" validate:"required"`
	SubTitle    string    `json:"subTitle,omitempty"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Image       string    `json:"image" validate:"required,url"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment represents a reader comment on a blog post. Blog is a lookup key only;
// the referenced post may no longer exist.
type Comment struct {
	ID         string    `json:"_id" validate:"required,objectid"`
	Blog       string    `json:"blog" validate:"required,objectid"`
	Name       string    `json:"name" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
