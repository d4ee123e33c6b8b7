package repositories

import (
	"strings"
	"testing"
	"time"

	"quickblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := OpenBadger("")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestParseID(t *testing.T) {
	id := models.NewID()
	got, err := ParseID(id)
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = ParseID(strings.ToUpper(id))
	assert.NoError(t, err)
	assert.Equal(t, id, got, "uppercase hex maps to the stored form")

	_, err = ParseID("abc")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestCommentKeys(t *testing.T) {
	blogID := models.NewID()
	key := commentKey(blogID, "c1")
	assert.Equal(t, "comment:"+blogID+":c1", string(key))
	assert.True(t, len(key) > len(commentPrefix(blogID)))
	assert.Equal(t, commentPrefix(blogID), key[:len(commentPrefix(blogID))])
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	comments := []*models.Comment{
		{ID: "a", CreatedAt: base.Add(1 * time.Second)},
		{ID: "c", CreatedAt: base.Add(3 * time.Second)},
		{ID: "b", CreatedAt: base.Add(2 * time.Second)},
		{ID: "d", CreatedAt: base.Add(3 * time.Second)},
	}

	SortNewestFirst(comments)

	var ids []string
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids)
}

func TestMarshalEntity(t *testing.T) {
	t.Run("marshal blog", func(t *testing.T) {
		blog := &models.Blog{
			ID:    models.NewID(),
			Title: "Test Blog",
		}

		data, err := marshalEntity(blog)
		assert.NoError(t, err)
		assert.Contains(t, string(data), `"_id":"`+blog.ID+`"`)

		var unmarshaled models.Blog
		err = unmarshalEntity(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, blog.ID, unmarshaled.ID)
		assert.Equal(t, blog.Title, unmarshaled.Title)
	})

	t.Run("marshal invalid entity", func(t *testing.T) {
		invalidEntity := struct {
			Ch chan int
		}{
			Ch: make(chan int),
		}

		_, err := marshalEntity(invalidEntity)
		assert.Error(t, err)
	})

	t.Run("unmarshal invalid JSON", func(t *testing.T) {
		var blog models.Blog
		err := unmarshalEntity([]byte(`{"_id":1,invalid json}`), &blog)
		assert.Error(t, err)
	})
}
