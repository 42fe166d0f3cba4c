// Package repository persists users and media records in MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"cloud-media-platform/internal/models"
)

var (
	// ErrNotFound is the expected-absence result, handled by callers as a
	// value rather than a failure.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("already exists")
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// MediaPatch is a partial update; nil fields are left unchanged.
type MediaPatch struct {
	Description *string
	Tags        *[]string
	UpdatedAt   time.Time
}

type MediaRepository interface {
	Insert(ctx context.Context, m *models.Media) error
	// FindByID is scoped to the owner's partition.
	FindByID(ctx context.Context, id, ownerID string) (*models.Media, error)
	// List returns the owner's records ordered by uploadedAt descending,
	// plus the total count of matching records independent of the page
	// window. page is 1-indexed. mediaType "" means no filter.
	List(ctx context.Context, ownerID string, page, pageSize int, mediaType models.MediaType) ([]models.Media, int64, error)
	// Search matches query case-insensitively against originalFileName and
	// description, and as exact case-insensitive membership in tags.
	Search(ctx context.Context, ownerID, query string, page, pageSize int) ([]models.Media, int64, error)
	Update(ctx context.Context, id, ownerID string, patch MediaPatch) (*models.Media, error)
	// Delete reports whether a record was removed; absence is not an error.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
