package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"venuely/config"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/domains/role/mocks"
	"venuely/internal/domains/role/model"
	"venuely/internal/domains/role/service"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type roleMockSet struct {
	repo  *mocks.MockRole
	cache *cacheMocks.MockRedisCache
}

func newRoleService(ctrl *gomock.Controller) (service.Role, roleMockSet) {
	m := roleMockSet{
		repo:  mocks.NewMockRole(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Save(gomock.Any(), "role:get:acc-1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(m.repo, cfg, m.cache, otelMocks.NewOtel()), m
}

func TestRoleService_FetchRole(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m roleMockSet)
		wantRole  string
		wantFound bool
		wantErr   bool
	}{
		{
			name: "cache hit skips the store",
			setupMock: func(m roleMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), "role:get:acc-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*string) = "organizer"

						return nil
					})
			},
			wantRole:  "organizer",
			wantFound: true,
		},
		{
			name: "cache miss reads the store",
			setupMock: func(m roleMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Role{ID: "r-1", UserID: "acc-1", Role: "user"}, nil)
			},
			wantRole:  "user",
			wantFound: true,
		},
		{
			name: "no record",
			setupMock: func(m roleMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Role{}, nil)
			},
		},
		{
			name: "store failure",
			setupMock: func(m roleMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Role{}, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRoleService(ctrl)
			tt.setupMock(m)

			role, found, err := svc.FetchRole(context.Background(), "acc-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestRoleService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRoleService(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Role{ID: "r-1", UserID: "acc-1", Role: "organizer"}, nil)

		res, err := svc.Get(context.Background(), "acc-1")

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", res.UserID)
		assert.Equal(t, "organizer", res.Role)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRoleService(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Role{}, nil)

		_, err := svc.Get(context.Background(), "acc-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
