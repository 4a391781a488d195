package model

import "errors"

// Hunt cover image constraints. Uploads are normalized to a fixed-size
// JPEG before they reach the bucket.
const (
	MaxCoverSizeBytes = int64(8 << 20) // 8 MB

	CoverWidth  = 1200
	CoverHeight = 800
	CoverExt    = ".jpg"
	CoverFolder = "covers"

	ContentTypeJPEG = "image/jpeg"

	CoverCacheControl = "public, max-age=31536000"
)

// UploadResult describes a stored object.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

var (
	// ErrFileTooLarge is returned when an upload exceeds the size limit
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidImageType is returned for non-image uploads
	ErrInvalidImageType = errors.New("invalid image type")
)

// IsAllowedImageType reports whether the content type may be uploaded.
func IsAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}
