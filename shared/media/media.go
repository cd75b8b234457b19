package media

import (
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"venuely/config"
	"venuely/shared/failure"

	"github.com/google/uuid"
)

type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindParking Kind = "parking"
)

const megabyte = 1 << 20

var (
	imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	videoTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
)

func ParseKind(value string) (Kind, error) {
	switch kind := Kind(strings.ToLower(value)); kind {
	case KindImage, KindVideo, KindParking:
		return kind, nil
	case "":
		return KindImage, nil
	default:
		return "", failure.BadRequestFromString("kind must be one of image video parking")
	}
}

// Check rejects a file whose type does not match the kind or whose size exceeds the configured limit.
func Check(cfg *config.Config, kind Kind, contentType string, size int64) error {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	allowed, limitMB := imageTypes, cfg.External.S3.MaxImageSizeMB
	if kind == KindVideo {
		allowed, limitMB = videoTypes, cfg.External.S3.MaxVideoSizeMB
	}

	if !slices.Contains(allowed, contentType) {
		return failure.BadRequestFromString(fmt.Sprintf("unsupported %s type %q", kind, contentType))
	}

	if limitMB > 0 && size > int64(limitMB)*megabyte {
		return failure.BadRequestFromString(fmt.Sprintf("%s must be at most %d MB", kind, limitMB))
	}

	return nil
}

// ObjectName returns a random file name that keeps the upload's extension.
func ObjectName(fileName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}

	return uuid.NewString() + ext
}
