package domain

import (
	"errors"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("media record not found")

// ThumbnailSize describes the generated thumbnail variant of a media record.
type ThumbnailSize struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mimeType"`
	Filesize int64  `json:"filesize"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// MediaSizes groups the named size variants stored on a record.
type MediaSizes struct {
	Thumbnail ThumbnailSize `json:"thumbnail"`
}

// MediaRecord is the persisted shape of one media collection entry.
// At most one record exists per Filename; the seeder upserts on that key.
type MediaRecord struct {
	ID           string     `json:"id"`
	Filename     string     `json:"filename"`
	Alt          string     `json:"alt"`
	MimeType     string     `json:"mimeType"`
	Filesize     int64      `json:"filesize"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	URL          string     `json:"url"`
	ThumbnailURL string     `json:"thumbnailURL"`
	Sizes        MediaSizes `json:"sizes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// MimeTypeFor derives the MIME type from a filename extension.
// Only PNG is distinguished; everything else is treated as JPEG.
func MimeTypeFor(filename string) string {
	if strings.EqualFold(path.Ext(filename), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
