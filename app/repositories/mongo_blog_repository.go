package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickblog/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBlogRepository implements BlogRepository on a MongoDB collection
type MongoBlogRepository struct {
	coll *mongo.Collection
}

// NewMongoBlogRepository creates a new MongoBlogRepository
func NewMongoBlogRepository(coll *mongo.Collection) *MongoBlogRepository {
	return &MongoBlogRepository{coll: coll}
}

func (r *MongoBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	blog.BeforeCreate()
	if err := blog.Validate(); err != nil {
		return fmt.Errorf("blog validation failed: %w", err)
	}
	doc, err := newBlogDocument(blog)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

func (r *MongoBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc blogDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}

// ListPublished returns published blogs in the collection's natural order
func (r *MongoBlogRepository) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	cur, err := r.coll.Find(ctx, bson.M{"isPublished": true})
	if err != nil {
		return nil, err
	}

	var found []blogDocument
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	blogs := make([]*models.Blog, 0, len(found))
	for i := range found {
		blogs = append(blogs, found[i].model())
	}
	return blogs, nil
}

func (r *MongoBlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TogglePublished negates isPublished server side with a pipeline update,
// so concurrent toggles never read a stale value.
func (r *MongoBlogRepository) TogglePublished(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc blogDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}
