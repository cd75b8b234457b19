package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "venuely/infras/otel/mocks"
	hallMocks "venuely/internal/domains/hall/mocks"
	"venuely/internal/domains/hall/model"
	"venuely/internal/domains/hall/model/dto"
	"venuely/internal/domains/hall/service"
	hotelMocks "venuely/internal/domains/hotel/mocks"
	hotelModel "venuely/internal/domains/hotel/model"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"
)

func organizerCtx(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestHallService_Create(t *testing.T) {
	tests := []struct {
		name      string
		caller    string
		hotel     hotelModel.Hotel
		setupMock func(repo *hallMocks.MockHall)
		wantCode  int
	}{
		{
			name:   "owner adds hall",
			caller: "o-1",
			hotel:  hotelModel.Hotel{ID: "h-1", OrganizerID: "o-1"},
			setupMock: func(repo *hallMocks.MockHall) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "someone else's hotel",
			caller:    "o-2",
			hotel:     hotelModel.Hotel{ID: "h-1", OrganizerID: "o-1"},
			setupMock: func(*hallMocks.MockHall) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "missing hotel",
			caller:    "o-1",
			hotel:     hotelModel.Hotel{},
			setupMock: func(*hallMocks.MockHall) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := hallMocks.NewMockHall(ctrl)
			hotels := hotelMocks.NewMockHotel(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			cache.EXPECT().Delete(gomock.Any(), "hotel:get:h-1").Return(nil).AnyTimes()

			hotels.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.hotel, nil)
			tt.setupMock(repo)

			svc := service.New(repo, hotels, cache, otelMocks.NewOtel())

			res, err := svc.Create(organizerCtx(tt.caller), dto.CreateHallRequest{HotelID: "h-1", Name: "Crystal", Capacity: 400})
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 400, res.Capacity)
			assert.Empty(t, res.Images)
		})
	}
}

func TestHallService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := hallMocks.NewMockHall(ctrl)
	hotels := hotelMocks.NewMockHotel(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hall{ID: "hall-1", HotelID: "h-1"}, nil)
	hotels.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{ID: "h-1", OrganizerID: "o-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.New(repo, hotels, cache, otelMocks.NewOtel())

	assert.NoError(t, svc.Delete(organizerCtx("o-1"), "hall-1"))
	time.Sleep(10 * time.Millisecond)
}
