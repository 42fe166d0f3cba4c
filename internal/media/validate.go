// Package media classifies uploads and derives thumbnails.
package media

import (
	"strings"

	"cloud-media-platform/internal/models"
)

// Classify maps a content type onto image/video using the configured
// allow-lists. ok is false for anything unmapped.
func Classify(contentType string, imageTypes, videoTypes []string) (models.MediaType, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	for _, t := range imageTypes {
		if ct == strings.ToLower(t) {
			return models.MediaTypeImage, true
		}
	}
	for _, t := range videoTypes {
		if ct == strings.ToLower(t) {
			return models.MediaTypeVideo, true
		}
	}
	return "", false
}
