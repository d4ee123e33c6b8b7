package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	blogCollection    = "blogs"
	commentCollection = "comments"
)

// MongoStore is the document storage backend.
type MongoStore struct {
	client   *mongo.Client
	blogs    *MongoBlogRepository
	comments *MongoCommentRepository
}

// OpenMongo connects to uri, verifies the connection and ensures the
// comment listing index exists.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(database)
	store := &MongoStore{
		client:   client,
		blogs:    NewMongoBlogRepository(db.Collection(blogCollection)),
		comments: NewMongoCommentRepository(db.Collection(commentCollection)),
	}
	if err := store.comments.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return store, nil
}

func (s *MongoStore) Name() string { return "mongodb" }

func (s *MongoStore) Blogs() BlogRepository { return s.blogs }

func (s *MongoStore) Comments() CommentRepository { return s.comments }

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (r *MongoCommentRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "blog", Value: 1},
			{Key: "isApproved", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create comment index: %w", err)
	}
	return nil
}
