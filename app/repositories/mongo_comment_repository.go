package repositories

import (
	"context"
	"fmt"

	"quickblog/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCommentRepository implements CommentRepository on a MongoDB collection
type MongoCommentRepository struct {
	coll *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(coll *mongo.Collection) *MongoCommentRepository {
	return &MongoCommentRepository{coll: coll}
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("comment validation failed: %w", err)
	}
	doc, err := newCommentDocument(comment)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *MongoCommentRepository) ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	blog, err := objectID(blogID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.coll.Find(ctx, bson.M{"blog": blog, "isApproved": true}, opts)
	if err != nil {
		return nil, err
	}

	var found []commentDocument
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	comments := make([]*models.Comment, 0, len(found))
	for i := range found {
		comments = append(comments, found[i].model())
	}
	return comments, nil
}
