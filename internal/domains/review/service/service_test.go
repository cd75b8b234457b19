package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
	"venuely/config"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/domains/review/mocks"
	"venuely/internal/domains/review/model"
	"venuely/internal/domains/review/model/dto"
	"venuely/internal/domains/review/service"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func ctxAs(role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestReviewService_Create(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		req       dto.CreateReviewRequest
		setupMock func(repo *mocks.MockReview)
		wantCode  int
	}{
		{
			name: "user reviews a hotel",
			role: constant.RoleUser,
			req:  dto.CreateReviewRequest{HotelID: "h-1", Rating: 5, Comment: " Great food "},
			setupMock: func(repo *mocks.MockReview) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, "Great food", *review.Comment)
						assert.Equal(t, "u-1", review.UserID)

						return nil
					})
			},
		},
		{
			name:      "organizers cannot review",
			role:      constant.RoleOrganizer,
			req:       dto.CreateReviewRequest{HotelID: "h-1", Rating: 4},
			setupMock: func(*mocks.MockReview) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "rating out of range",
			role:      constant.RoleUser,
			req:       dto.CreateReviewRequest{HotelID: "h-1", Rating: 6},
			setupMock: func(*mocks.MockReview) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown hotel",
			role: constant.RoleUser,
			req:  dto.CreateReviewRequest{HotelID: "h-404", Rating: 3},
			setupMock: func(repo *mocks.MockReview) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockReview(ctrl)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			redis.EXPECT().Delete(gomock.Any(), "review:hotel:h-1").Return(nil).AnyTimes()

			tt.setupMock(repo)

			svc := service.New(repo, &config.Config{}, redis, otelMocks.NewOtel())

			res, err := svc.Create(ctxAs(tt.role), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 5, res.Rating)
		})
	}
}

func TestReviewService_ListByHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReview(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Get(gomock.Any(), "review:hotel:h-1", gomock.Any()).Return(errors.New("miss"))
	redis.EXPECT().Save(gomock.Any(), "review:hotel:h-1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().GetAllWithAuthor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ReviewWithAuthor{
		{Review: model.Review{ID: "r-1", HotelID: "h-1", Rating: 5}, AuthorName: "Sana"},
		{Review: model.Review{ID: "r-2", HotelID: "h-1", Rating: 4}, AuthorName: "Bilal"},
		{Review: model.Review{ID: "r-3", HotelID: "h-1", Rating: 4}, AuthorName: "Hina"},
	}, nil)

	svc := service.New(repo, &config.Config{}, redis, otelMocks.NewOtel())

	res, err := svc.ListByHotel(ctxAs(constant.RoleOrganizer), "h-1")
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.InDelta(t, 4.3, res.AverageRating, 0.001)
	assert.Equal(t, "Sana", res.Reviews[0].AuthorName)
}
