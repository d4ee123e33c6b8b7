package repositories

import (
	"fmt"
	"time"

	"quickblog/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// blogDocument is the stored shape of a blog. Identifiers are kept as
// native ObjectIds so the collections stay interoperable with other
// MongoDB tooling.
type blogDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	SubTitle    string             `bson:"subTitle,omitempty"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
	IsPublished bool               `bson:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type commentDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Blog       primitive.ObjectID `bson:"blog"`
	Name       string             `bson:"name"`
	Content    string             `bson:"content"`
	IsApproved bool               `bson:"isApproved"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

// objectID parses id for use in a filter.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not a 24 character hex ObjectId", ErrInvalidID, id)
	}
	return oid, nil
}

func newBlogDocument(blog *models.Blog) (*blogDocument, error) {
	id, err := objectID(blog.ID)
	if err != nil {
		return nil, err
	}
	return &blogDocument{
		ID:          id,
		Title:       blog.Title,
		SubTitle:    blog.SubTitle,
		Description: blog.Description,
		Category:    blog.Category,
		Image:       blog.Image,
		IsPublished: blog.IsPublished,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}, nil
}

func (d *blogDocument) model() *models.Blog {
	return &models.Blog{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		SubTitle:    d.SubTitle,
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newCommentDocument(comment *models.Comment) (*commentDocument, error) {
	id, err := objectID(comment.ID)
	if err != nil {
		return nil, err
	}
	blog, err := objectID(comment.Blog)
	if err != nil {
		return nil, err
	}
	return &commentDocument{
		ID:         id,
		Blog:       blog,
		Name:       comment.Name,
		Content:    comment.Content,
		IsApproved: comment.IsApproved,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}, nil
}

func (d *commentDocument) model() *models.Comment {
	return &models.Comment{
		ID:         d.ID.Hex(),
		Blog:       d.Blog.Hex(),
		Name:       d.Name,
		Content:    d.Content,
		IsApproved: d.IsApproved,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
