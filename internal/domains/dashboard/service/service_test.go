package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venuely/config"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/domains/dashboard/model/dto"
	"venuely/internal/domains/dashboard/service"
	eventMocks "venuely/internal/domains/event/mocks"
	favoriteMocks "venuely/internal/domains/favorite/mocks"
	hotelMocks "venuely/internal/domains/hotel/mocks"
	inviteMocks "venuely/internal/domains/invite/mocks"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"
)

type dashboardMockSet struct {
	hotels    *hotelMocks.MockHotel
	invites   *inviteMocks.MockInvite
	favorites *favoriteMocks.MockFavorite
	events    *eventMocks.MockEvent
	cache     *cacheMocks.MockRedisCache
}

func callerCtx(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestDashboardService_OrganizerStats(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		setupMock func(m dashboardMockSet)
		want      dto.OrganizerStatsResponse
		wantCode  int
	}{
		{
			name: "counts from repositories on cache miss",
			role: constant.RoleOrganizer,
			setupMock: func(m dashboardMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), "dashboard:o-1", gomock.Any()).Return(errors.New("miss"))
				m.hotels.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				m.invites.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil)
				m.favorites.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
				m.events.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
				m.cache.EXPECT().Save(gomock.Any(), "dashboard:o-1", gomock.Any(), 60).Return(nil).AnyTimes()
			},
			want: dto.OrganizerStatsResponse{Venues: 2, InvitesSent: 7, Favorites: 3, OpenEvents: 11},
		},
		{
			name: "served from cache",
			role: constant.RoleOrganizer,
			setupMock: func(m dashboardMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), "dashboard:o-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*dto.OrganizerStatsResponse) = dto.OrganizerStatsResponse{Venues: 1}

						return nil
					})
			},
			want: dto.OrganizerStatsResponse{Venues: 1},
		},
		{
			name: "count failure",
			role: constant.RoleOrganizer,
			setupMock: func(m dashboardMockSet) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				m.hotels.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "users have no dashboard",
			role:      constant.RoleUser,
			setupMock: func(dashboardMockSet) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := dashboardMockSet{
				hotels:    hotelMocks.NewMockHotel(ctrl),
				invites:   inviteMocks.NewMockInvite(ctrl),
				favorites: favoriteMocks.NewMockFavorite(ctrl),
				events:    eventMocks.NewMockEvent(ctrl),
				cache:     cacheMocks.NewMockRedisCache(ctrl),
			}
			tt.setupMock(m)

			cfg := &config.Config{}
			cfg.Cache.TTL = 60

			svc := service.New(m.hotels, m.invites, m.favorites, m.events, cfg, m.cache, otelMocks.NewOtel())

			res, err := svc.OrganizerStats(callerCtx("o-1", tt.role))
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
