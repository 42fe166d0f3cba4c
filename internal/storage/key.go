package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectKey builds the object key for an upload:
// {ownerID}/{YYYYMMDDHHMMSS}_{suffix}{ext}. The suffix keeps keys unique for
// identical filenames uploaded within the same second, the owner prefix makes
// bulk per-owner operations possible, and the original extension is kept.
func ObjectKey(ownerID, originalFilename string, now time.Time, suffix string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("%s/%s_%s%s", ownerID, now.UTC().Format("20060102150405"), suffix, ext)
}

// RandomSuffix returns a short random component for ObjectKey.
func RandomSuffix() string {
	return uuid.NewString()[:8]
}

// ThumbKey derives the thumbnail object key from the original's key.
func ThumbKey(key string) string {
	return strings.TrimSuffix(key, filepath.Ext(key)) + "_thumb.jpg"
}
