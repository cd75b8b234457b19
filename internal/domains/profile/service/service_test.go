package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venuely/config"
	"venuely/infras/otel/mocks"
	"venuely/infras/s3"
	s3Mocks "venuely/infras/s3/mocks"
	profileMocks "venuely/internal/domains/profile/mocks"
	"venuely/internal/domains/profile/model"
	"venuely/internal/domains/profile/model/dto"
	"venuely/internal/domains/profile/service"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
)

func userCtx(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestProfileService_GetMe(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "from repository",
			setupMock: func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "profile:get:u-1", gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{ID: "u-1", Email: "u@example.com", FullName: "Aisha"}, nil)
				cache.EXPECT().Save(gomock.Any(), "profile:get:u-1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "cache hit",
			setupMock: func(_ *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "profile:get:u-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing profile",
			setupMock: func(repo *profileMocks.MockProfile, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := profileMocks.NewMockProfile(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(repo, cache)

			svc := service.New(repo, s3Mocks.NewMockS3(ctrl), &config.Config{}, cache, mocks.NewOtel())

			_, err := svc.GetMe(userCtx("u-1"))
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileService_UpdateMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := profileMocks.NewMockProfile(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(repo, s3Mocks.NewMockS3(ctrl), &config.Config{}, cache, mocks.NewOtel())

	err := svc.UpdateMe(userCtx("u-1"), dto.UpdateProfileRequest{})
	assert.Error(t, err)

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, "Aisha K", fields[model.FieldFullName])
			assert.NotContains(t, fields, model.FieldPhone)

			return nil
		})
	cache.EXPECT().Delete(gomock.Any(), "profile:get:u-1").Return(nil).AnyTimes()

	err = svc.UpdateMe(userCtx("u-1"), dto.UpdateProfileRequest{FullName: "Aisha K"})
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.MaxImageSizeMB = 10

	previous := "https://media.test/avatars/u-1/old.png"

	tests := []struct {
		name      string
		req       dto.UploadAvatarRequest
		setupMock func(repo *profileMocks.MockProfile, storage *s3Mocks.MockS3, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "replaces avatar",
			req:  dto.UploadAvatarRequest{File: strings.NewReader("png"), FileName: "me.png", ContentType: "image/png", Size: 3},
			setupMock: func(repo *profileMocks.MockProfile, storage *s3Mocks.MockS3, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{ID: "u-1", AvatarURL: &previous}, nil)
				storage.EXPECT().Put(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, object s3.Object) (string, error) {
						assert.Equal(t, "avatars/u-1", object.Directory)
						assert.True(t, strings.HasSuffix(object.Name, ".png"))

						return "https://media.test/avatars/u-1/new.png", nil
					})
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				storage.EXPECT().Remove(gomock.Any(), previous).Return(nil).AnyTimes()
			},
		},
		{
			name:      "rejects non image",
			req:       dto.UploadAvatarRequest{File: strings.NewReader("x"), FileName: "a.mp4", ContentType: "video/mp4", Size: 1},
			setupMock: func(*profileMocks.MockProfile, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "upload failure",
			req:  dto.UploadAvatarRequest{File: strings.NewReader("png"), FileName: "me.png", ContentType: "image/png", Size: 3},
			setupMock: func(repo *profileMocks.MockProfile, storage *s3Mocks.MockS3, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{ID: "u-1"}, nil)
				storage.EXPECT().Put(gomock.Any(), gomock.Any()).Return("", errors.New("bucket gone"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := profileMocks.NewMockProfile(ctrl)
			storage := s3Mocks.NewMockS3(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(repo, storage, cache)

			svc := service.New(repo, storage, cfg, cache, mocks.NewOtel())

			res, err := svc.UploadAvatar(userCtx("u-1"), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "https://media.test/avatars/u-1/new.png", res.URL)
		})
	}
}
