package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cloud-media-platform/internal/apperrors"
	"cloud-media-platform/internal/media"
	"cloud-media-platform/internal/models"
	"cloud-media-platform/internal/repository"
	"cloud-media-platform/internal/storage"
)

const (
	maxPageSize = 100
)

// MediaConfig carries the upload limits and type allow-lists.
type MediaConfig struct {
	MaxFileSizeBytes int64
	ImageTypes       []string
	VideoTypes       []string
}

// MediaService orchestrates the media lifecycle: upload, owner-checked
// read/update/delete, list and search.
type MediaService struct {
	repo  repository.MediaRepository
	store storage.ObjectStore
	cfg   MediaConfig
	log   *zap.SugaredLogger

	now func() time.Time
}

func NewMediaService(repo repository.MediaRepository, store storage.ObjectStore, cfg MediaConfig, log *zap.SugaredLogger) *MediaService {
	return &MediaService{repo: repo, store: store, cfg: cfg, log: log, now: time.Now}
}

// UploadInput is one upload request. TagsJSON, when non-nil, must be a JSON
// array of strings.
type UploadInput struct {
	OwnerID     string
	FileName    string
	ContentType string
	Data        []byte
	Description *string
	TagsJSON    *string
}

// Upload validates the payload, stores the object, derives a thumbnail for
// images (best-effort) and persists the record. Validation failures have no
// side effects. A failure after the object upload leaves an orphaned object
// behind; there is no reconciliation sweep.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*models.Media, error) {
	mediaType, ok := media.Classify(in.ContentType, s.cfg.ImageTypes, s.cfg.VideoTypes)
	if !ok {
		return nil, apperrors.Validation(fmt.Sprintf("file type %q is not allowed", in.ContentType))
	}

	size := int64(len(in.Data))
	if size > s.cfg.MaxFileSizeBytes {
		return nil, apperrors.PayloadTooLarge(fmt.Sprintf(
			"file size (%.2f MB) exceeds maximum allowed size (%d MB)",
			float64(size)/(1024*1024), s.cfg.MaxFileSizeBytes/(1024*1024)))
	}

	var tags []string
	if in.TagsJSON != nil {
		if err := json.Unmarshal([]byte(*in.TagsJSON), &tags); err != nil {
			return nil, apperrors.Validation("invalid tags format, must be a JSON array of strings")
		}
	}

	now := s.now().UTC()
	key := storage.ObjectKey(in.OwnerID, in.FileName, now, storage.RandomSuffix())
	blobURL, err := s.store.Upload(ctx, key, in.ContentType, bytes.NewReader(in.Data))
	if err != nil {
		return nil, apperrors.Internal("failed to upload file", err)
	}

	var thumbnailURL *string
	if mediaType == models.MediaTypeImage {
		thumbnailURL = s.uploadThumbnail(ctx, key, in.Data)
	}

	m := &models.Media{
		ID:               uuid.NewString(),
		UserID:           in.OwnerID,
		FileName:         key,
		OriginalFileName: in.FileName,
		MediaType:        mediaType,
		FileSize:         size,
		MimeType:         in.ContentType,
		BlobURL:          blobURL,
		ThumbnailURL:     thumbnailURL,
		Description:      in.Description,
		Tags:             tags,
		UploadedAt:       now,
		UpdatedAt:        now,
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, apperrors.Internal("failed to save media record", err)
	}
	return m, nil
}

// uploadThumbnail never fails the request: a broken image or a store error
// just means the record has no thumbnail.
func (s *MediaService) uploadThumbnail(ctx context.Context, key string, data []byte) *string {
	thumb, err := media.Thumbnail(data, media.ThumbnailMaxWidth, media.ThumbnailMaxHeight)
	if err != nil {
		s.log.Warnw("thumbnail generation failed", "key", key, "error", err)
		return nil
	}
	url, err := s.store.Upload(ctx, storage.ThumbKey(key), "image/jpeg", bytes.NewReader(thumb))
	if err != nil {
		s.log.Warnw("thumbnail upload failed", "key", key, "error", err)
		return nil
	}
	return &url
}

func (s *MediaService) Get(ctx context.Context, ownerID, id string) (*models.Media, error) {
	return s.fetchOwned(ctx, ownerID, id)
}

func (s *MediaService) Update(ctx context.Context, ownerID, id string, req models.MediaUpdateRequest) (*models.Media, error) {
	if _, err := s.fetchOwned(ctx, ownerID, id); err != nil {
		return nil, err
	}

	patch := repository.MediaPatch{
		Description: req.Description,
		Tags:        req.Tags,
		UpdatedAt:   s.now().UTC(),
	}
	m, err := s.repo.Update(ctx, id, ownerID, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("media not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to update media", err)
	}
	return m, nil
}

// Delete removes the object, then its thumbnail, then the metadata record.
// Object deletions are best-effort; the record removal is the authoritative
// signal that the media is gone.
func (s *MediaService) Delete(ctx context.Context, ownerID, id string) error {
	m, err := s.fetchOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, m.FileName); err != nil {
		s.log.Warnw("object delete failed", "key", m.FileName, "error", err)
	}
	if m.ThumbnailURL != nil {
		thumbKey := storage.ThumbKey(m.FileName)
		if err := s.store.Delete(ctx, thumbKey); err != nil {
			s.log.Warnw("thumbnail delete failed", "key", thumbKey, "error", err)
		}
	}

	if _, err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return apperrors.Internal("failed to delete media record", err)
	}
	return nil
}

func (s *MediaService) List(ctx context.Context, ownerID string, page, pageSize int, mediaType string) (*models.MediaListResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	mt := models.MediaType(mediaType)
	if mt != "" && mt != models.MediaTypeImage && mt != models.MediaTypeVideo {
		return nil, apperrors.Validation("mediaType must be image or video")
	}

	items, total, err := s.repo.List(ctx, ownerID, page, pageSize, mt)
	if err != nil {
		return nil, apperrors.Internal("failed to list media", err)
	}
	return &models.MediaListResponse{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *MediaService) Search(ctx context.Context, ownerID, query string, page, pageSize int) (*models.MediaListResponse, error) {
	if query == "" {
		return nil, apperrors.Validation("query must not be empty")
	}
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	items, total, err := s.repo.Search(ctx, ownerID, query, page, pageSize)
	if err != nil {
		return nil, apperrors.Internal("failed to search media", err)
	}
	return &models.MediaListResponse{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// fetchOwned re-verifies ownership on every call even though the lookup is
// already owner-scoped; lookups may be partition-key-agnostic in some
// backends.
func (s *MediaService) fetchOwned(ctx context.Context, ownerID, id string) (*models.Media, error) {
	m, err := s.repo.FindByID(ctx, id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("media not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch media", err)
	}
	if m.UserID != ownerID {
		return nil, apperrors.Forbidden("you don't have permission to access this media")
	}
	return m, nil
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return apperrors.Validation("page must be >= 1")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return apperrors.Validation(fmt.Sprintf("pageSize must be between 1 and %d", maxPageSize))
	}
	return nil
}
