package service

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

// AttachmentName returns a unique file name for an uploaded image, with an extension matching mimeType.
func AttachmentName(mimeType string) string {
	return uuid.Must(uuid.NewV4()).String() + imageExtension(mimeType)
}

func imageExtension(mimeType string) string {
	mediaType, _, _ := strings.Cut(strings.ToLower(mimeType), ";")

	switch strings.TrimSpace(mediaType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
