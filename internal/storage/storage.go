// Package storage holds original and thumbnail file content in an object
// store, addressed by owner-namespaced keys.
package storage

import (
	"context"
	"io"
)

type ObjectStore interface {
	// Upload streams body to the store under key and returns a read URL for
	// the object.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Delete is best-effort; absence is not an error.
	Delete(ctx context.Context, key string) error
	// SignedURL returns a time-limited read-only URL for key.
	SignedURL(ctx context.Context, key string) (string, error)
}
