package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/domains/favorite/mocks"
	"venuely/internal/domains/favorite/model"
	"venuely/internal/domains/favorite/model/dto"
	"venuely/internal/domains/favorite/service"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func organizerCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "o-1")
}

func TestFavoriteService_Add(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockFavorite)
		wantCode  int
	}{
		{
			name: "adds favorite",
			setupMock: func(repo *mocks.MockFavorite) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, favorite model.Favorite) error {
						assert.Equal(t, "o-1", favorite.OrganizerID)
						assert.Equal(t, "e-1", favorite.EventID)

						return nil
					})
			},
		},
		{
			name: "duplicate pair",
			setupMock: func(repo *mocks.MockFavorite) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (favorite): %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown event",
			setupMock: func(repo *mocks.MockFavorite) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "storage failure",
			setupMock: func(repo *mocks.MockFavorite) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockFavorite(ctrl)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			redis.EXPECT().Delete(gomock.Any(), "dashboard:o-1").Return(nil).AnyTimes()

			tt.setupMock(repo)

			svc := service.New(repo, redis, otelMocks.NewOtel())

			res, err := svc.Add(organizerCtx(), dto.AddFavoriteRequest{EventID: "e-1"})
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "e-1", res.EventID)
		})
	}
}

func TestFavoriteService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFavorite(ctrl)
	svc := service.New(repo, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())

	repo.EXPECT().GetAllWithEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FavoriteEvent{
		{
			Favorite:    model.Favorite{ID: "f-1", OrganizerID: "o-1", EventID: "e-1"},
			EventName:   "Walima",
			GuestCount:  300,
			EventStatus: "open",
		},
	}, nil)

	res, err := svc.List(organizerCtx())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "e-1", res[0].Event.ID)
	assert.Equal(t, "Walima", res[0].Event.EventName)
	assert.Equal(t, "open", res[0].Event.Status)
}

func TestFavoriteService_List_FailsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFavorite(ctrl)
	svc := service.New(repo, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())

	repo.EXPECT().GetAllWithEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	res, err := svc.List(organizerCtx())

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestFavoriteService_ListEventIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFavorite(ctrl)
	svc := service.New(repo, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldEventID).
		Return([]model.Favorite{{EventID: "e-1"}, {EventID: "e-2"}}, nil)

	res, err := svc.ListEventIDs(organizerCtx())

	assert.NoError(t, err)
	assert.Equal(t, []string{"e-1", "e-2"}, res)
}

func TestFavoriteService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFavorite(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.New(repo, redis, otelMocks.NewOtel())

	assert.NoError(t, svc.Remove(organizerCtx(), "e-1"))
	time.Sleep(10 * time.Millisecond)
}
