package repositories

import (
	"strings"
	"testing"
	"time"

	"quickblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBlogDocument(t *testing.T) {
	blog := newTestBlog("Stored", true)
	blog.BeforeCreate()

	doc, err := newBlogDocument(blog)
	require.NoError(t, err)
	assert.Equal(t, blog.ID, doc.ID.Hex())

	data, err := bson.Marshal(doc)
	require.NoError(t, err)
	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	assert.IsType(t, primitive.ObjectID{}, raw["_id"])
	assert.Equal(t, "Stored", raw["title"])
	assert.Equal(t, true, raw["isPublished"])

	back := doc.model()
	assert.Equal(t, blog.ID, back.ID)
	assert.Equal(t, blog.Image, back.Image)

	_, err = newBlogDocument(&models.Blog{ID: "bad"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestCommentDocument(t *testing.T) {
	comment := &models.Comment{
		Blog:      models.NewID(),
		Name:      "n",
		Content:   "c",
		CreatedAt: time.Now().UTC(),
	}
	comment.BeforeCreate()

	doc, err := newCommentDocument(comment)
	require.NoError(t, err)

	data, err := bson.Marshal(doc)
	require.NoError(t, err)
	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	assert.IsType(t, primitive.ObjectID{}, raw["_id"])
	assert.IsType(t, primitive.ObjectID{}, raw["blog"])

	back := doc.model()
	assert.Equal(t, comment.ID, back.ID)
	assert.Equal(t, comment.Blog, back.Blog)

	_, err = newCommentDocument(&models.Comment{ID: models.NewID(), Blog: "bad"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestObjectIDFilterAcceptsUppercase(t *testing.T) {
	id := models.NewID()
	oid, err := objectID(strings.ToUpper(id))
	require.NoError(t, err)
	assert.Equal(t, id, oid.Hex())
}
