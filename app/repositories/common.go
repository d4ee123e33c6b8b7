package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"quickblog/app/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
)

const (
	// Key prefixes for different entity types
	BlogKeyPrefix    = "blog:"
	CommentKeyPrefix = "comment:"
)

func blogKey(id string) []byte {
	return []byte(BlogKeyPrefix + id)
}

// commentKey embeds the blog id so a blog's comments share one prefix.
func commentKey(blogID, id string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", CommentKeyPrefix, blogID, id))
}

func commentPrefix(blogID string) []byte {
	return []byte(fmt.Sprintf("%s%s:", CommentKeyPrefix, blogID))
}

// ParseID rejects identifiers that are not ObjectId hex strings and returns
// the lowercase form every key and filter is built from.
func ParseID(id string) (string, error) {
	canonical, ok := models.CanonicalID(id)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a 24 character hex ObjectId", ErrInvalidID, id)
	}
	return canonical, nil
}

// SortNewestFirst orders comments by creation time descending, newest id first on ties.
func SortNewestFirst(comments []*models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}

// marshalEntity marshals an entity to JSON
func marshalEntity(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
