package media_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"venuely/config"
	"venuely/shared/media"
)

func TestCheck(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.MaxImageSizeMB = 10
	cfg.External.S3.MaxVideoSizeMB = 50

	tests := []struct {
		name        string
		kind        media.Kind
		contentType string
		size        int64
		wantErr     bool
	}{
		{name: "jpeg image", kind: media.KindImage, contentType: "image/jpeg", size: 2 << 20},
		{name: "parking png", kind: media.KindParking, contentType: "image/png", size: 1 << 20},
		{name: "mp4 video at limit", kind: media.KindVideo, contentType: "video/mp4", size: 50 << 20},
		{name: "video over limit", kind: media.KindVideo, contentType: "video/mp4", size: 50<<20 + 1, wantErr: true},
		{name: "image over limit", kind: media.KindImage, contentType: "image/png", size: 11 << 20, wantErr: true},
		{name: "video as image", kind: media.KindImage, contentType: "video/mp4", size: 1, wantErr: true},
		{name: "content type with params", kind: media.KindImage, contentType: "image/jpeg; charset=binary", size: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := media.Check(cfg, tt.kind, tt.contentType, tt.size)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, err := media.ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, media.KindImage, kind)

	kind, err = media.ParseKind("Video")
	assert.NoError(t, err)
	assert.Equal(t, media.KindVideo, kind)

	_, err = media.ParseKind("audio")
	assert.Error(t, err)
}

func TestObjectName(t *testing.T) {
	name := media.ObjectName("Lobby.JPG", "image/jpeg")

	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 36+len(".jpg"))
}
