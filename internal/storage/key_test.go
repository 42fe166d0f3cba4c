package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)

	key := ObjectKey("user-1", "holiday photo.JPG", now, "abcd1234")
	assert.Equal(t, "user-1/20240315103045_abcd1234.JPG", key)

	// no extension
	key = ObjectKey("user-1", "README", now, "abcd1234")
	assert.Equal(t, "user-1/20240315103045_abcd1234", key)
}

func TestObjectKeyUniquePerUpload(t *testing.T) {
	// identical filename and timestamp, distinct suffixes
	now := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	k1 := ObjectKey("user-1", "a.png", now, RandomSuffix())
	k2 := ObjectKey("user-1", "a.png", now, RandomSuffix())
	assert.NotEqual(t, k1, k2)
}

func TestObjectKeyNamespacedByOwner(t *testing.T) {
	now := time.Now()
	key := ObjectKey("owner-42", "a.png", now, RandomSuffix())
	assert.True(t, strings.HasPrefix(key, "owner-42/"))
}

func TestRandomSuffix(t *testing.T) {
	s := RandomSuffix()
	assert.Len(t, s, 8)
	assert.NotEqual(t, s, RandomSuffix())
}

func TestThumbKey(t *testing.T) {
	assert.Equal(t, "u/20240315103045_abcd1234_thumb.jpg", ThumbKey("u/20240315103045_abcd1234.png"))
	assert.Equal(t, "u/x_thumb.jpg", ThumbKey("u/x"))
}
