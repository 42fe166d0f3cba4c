package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"cloud-media-platform/internal/apperrors"
	"cloud-media-platform/internal/models"
	"cloud-media-platform/internal/repository"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrAlreadyExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMediaRepo struct {
	items     map[string]*models.Media
	insertErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: map[string]*models.Media{}}
}

func (f *fakeMediaRepo) Insert(_ context.Context, m *models.Media) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	cp := *m
	f.items[m.ID] = &cp
	return nil
}

// FindByID is deliberately partition-key-agnostic: the service's own
// ownership re-check has to catch cross-owner access.
func (f *fakeMediaRepo) FindByID(_ context.Context, id, _ string) (*models.Media, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMediaRepo) List(_ context.Context, ownerID string, page, pageSize int, mediaType models.MediaType) ([]models.Media, int64, error) {
	var all []models.Media
	for _, m := range f.items {
		if m.UserID != ownerID {
			continue
		}
		if mediaType != "" && m.MediaType != mediaType {
			continue
		}
		all = append(all, *m)
	}
	return paginate(all, page, pageSize)
}

func (f *fakeMediaRepo) Search(_ context.Context, ownerID, query string, page, pageSize int) ([]models.Media, int64, error) {
	q := strings.ToLower(query)
	var all []models.Media
	for _, m := range f.items {
		if m.UserID != ownerID {
			continue
		}
		match := strings.Contains(strings.ToLower(m.OriginalFileName), q)
		if !match && m.Description != nil {
			match = strings.Contains(strings.ToLower(*m.Description), q)
		}
		for _, tag := range m.Tags {
			if match {
				break
			}
			match = strings.EqualFold(tag, query)
		}
		if match {
			all = append(all, *m)
		}
	}
	return paginate(all, page, pageSize)
}

func paginate(all []models.Media, page, pageSize int) ([]models.Media, int64, error) {
	sort.Slice(all, func(i, j int) bool { return all[i].UploadedAt.After(all[j].UploadedAt) })
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeMediaRepo) Update(_ context.Context, id, ownerID string, patch repository.MediaPatch) (*models.Media, error) {
	m, ok := f.items[id]
	if !ok || m.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	if patch.Description != nil {
		m.Description = patch.Description
	}
	if patch.Tags != nil {
		m.Tags = *patch.Tags
	}
	m.UpdatedAt = patch.UpdatedAt
	cp := *m
	return &cp, nil
}

func (f *fakeMediaRepo) Delete(_ context.Context, id, ownerID string) (bool, error) {
	m, ok := f.items[id]
	if !ok || m.UserID != ownerID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeStore struct {
	objects   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
	// fail only thumbnail uploads
	failThumbs bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.failThumbs && strings.HasSuffix(key, "_thumb.jpg") {
		return "", errors.New("thumb upload refused")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[key] = data
	return "https://store.test/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeStore) SignedURL(_ context.Context, key string) (string, error) {
	return "https://store.test/" + key, nil
}

var testMediaConfig = MediaConfig{
	MaxFileSizeBytes: 1 * 1024 * 1024,
	ImageTypes:       []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	VideoTypes:       []string{"video/mp4", "video/mpeg", "video/quicktime", "video/webm"},
}

func newTestMediaService(repo repository.MediaRepository, store *fakeStore) *MediaService {
	return NewMediaService(repo, store, testMediaConfig, zap.NewNop().Sugar())
}

func statusOf(err error) int {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func codeOf(err error) string {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
