package models

import "time"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media is one stored image or video. UserID is immutable and is the
// authorization key for every operation on the record. FileName is the object
// key in blob storage; ThumbnailURL is set only when thumbnail derivation
// succeeded at upload time.
type Media struct {
	ID               string    `bson:"_id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	FileName         string    `bson:"fileName" json:"fileName"`
	OriginalFileName string    `bson:"originalFileName" json:"originalFileName"`
	MediaType        MediaType `bson:"mediaType" json:"mediaType"`
	FileSize         int64     `bson:"fileSize" json:"fileSize"`
	MimeType         string    `bson:"mimeType" json:"mimeType"`
	BlobURL          string    `bson:"blobUrl" json:"blobUrl"`
	ThumbnailURL     *string   `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl"`
	Description      *string   `bson:"description,omitempty" json:"description"`
	Tags             []string  `bson:"tags,omitempty" json:"tags"`
	UploadedAt       time.Time `bson:"uploadedAt" json:"uploadedAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
