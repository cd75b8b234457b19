package service

import (
	"context"
	"fmt"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/internal/domains/dashboard/model/dto"
	eventModel "venuely/internal/domains/event/model"
	eventRepo "venuely/internal/domains/event/repository"
	favoriteModel "venuely/internal/domains/favorite/model"
	favoriteRepo "venuely/internal/domains/favorite/repository"
	hotelModel "venuely/internal/domains/hotel/model"
	hotelRepo "venuely/internal/domains/hotel/repository"
	inviteModel "venuely/internal/domains/invite/model"
	inviteRepo "venuely/internal/domains/invite/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheDashboard = "dashboard"

type Dashboard interface {
	OrganizerStats(ctx context.Context) (dto.OrganizerStatsResponse, error)
}

type serviceImpl struct {
	hotelRepo    hotelRepo.Hotel
	inviteRepo   inviteRepo.Invite
	favoriteRepo favoriteRepo.Favorite
	eventRepo    eventRepo.Event
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	hotelRepo hotelRepo.Hotel,
	inviteRepo inviteRepo.Invite,
	favoriteRepo favoriteRepo.Favorite,
	eventRepo eventRepo.Event,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		hotelRepo:    hotelRepo,
		inviteRepo:   inviteRepo,
		favoriteRepo: favoriteRepo,
		eventRepo:    eventRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) OrganizerStats(ctx context.Context) (res dto.OrganizerStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OrganizerStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role != constant.RoleOrganizer {
		return res, failure.ForbiddenError
	}

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	cacheKey := shared.BuildCacheKey(cacheDashboard, organizer)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	counts := []struct {
		name  string
		count func() (int, error)
		dest  *int
	}{
		{"venues", func() (int, error) {
			return s.hotelRepo.Count(ctx, shared.FilterByFields(hotelModel.TableName, hotelModel.FieldOrganizerID, organizer))
		}, &res.Venues},
		{"invites", func() (int, error) {
			return s.inviteRepo.Count(ctx, shared.FilterByFields(inviteModel.TableName, inviteModel.FieldOrganizerID, organizer))
		}, &res.InvitesSent},
		{"favorites", func() (int, error) {
			return s.favoriteRepo.Count(ctx, shared.FilterByFields(favoriteModel.TableName, favoriteModel.FieldOrganizerID, organizer))
		}, &res.Favorites},
		{"open events", func() (int, error) {
			return s.eventRepo.Count(ctx, shared.FilterByFields(eventModel.TableName, eventModel.FieldStatus, eventModel.StatusOpen))
		}, &res.OpenEvents},
	}

	for _, c := range counts {
		value, err := c.count()
		if err != nil {
			log.Error().Err(err).Msgf("failed to count %s", c.name)

			return dto.OrganizerStatsResponse{}, fmt.Errorf("failed to count %s: %w", c.name, err)
		}

		*c.dest = value
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}
