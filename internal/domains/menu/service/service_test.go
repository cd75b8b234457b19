package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "venuely/infras/otel/mocks"
	hotelMocks "venuely/internal/domains/hotel/mocks"
	hotelModel "venuely/internal/domains/hotel/model"
	menuMocks "venuely/internal/domains/menu/mocks"
	"venuely/internal/domains/menu/model"
	"venuely/internal/domains/menu/model/dto"
	"venuely/internal/domains/menu/service"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"
)

func TestMenuBundleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := menuMocks.NewMockMenuBundle(ctrl)
	hotels := hotelMocks.NewMockHotel(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	hotels.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{ID: "h-1", OrganizerID: "o-1"}, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bundle model.MenuBundle) error {
			assert.Nil(t, bundle.SweetDishType)

			return nil
		})

	svc := service.New(repo, hotels, cache, otelMocks.NewOtel())
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "o-1")

	res, err := svc.Create(ctx, dto.CreateMenuBundleRequest{
		HotelID:       "h-1",
		Name:          "Silver",
		ChickenDish:   "Chicken Karahi",
		RiceDish:      "Biryani",
		SweetDishType: "Kheer",
		FinalPrice:    2200,
	})
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2200.0, res.FinalPrice)
	assert.Empty(t, res.AdditionalMainDishes)
}

func TestMenuBundleService_Update_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := menuMocks.NewMockMenuBundle(ctrl)
	hotels := hotelMocks.NewMockHotel(ctrl)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.MenuBundle{ID: "m-1", HotelID: "h-1"}, nil)
	hotels.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{ID: "h-1", OrganizerID: "o-1"}, nil)

	svc := service.New(repo, hotels, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "o-2")

	err := svc.Update(ctx, "m-1", dto.UpdateMenuBundleRequest{Name: "Gold"})

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
