package service

import (
	"context"
	"fmt"
	"venuely/infras/otel"
	"venuely/internal/domains/favorite/model"
	"venuely/internal/domains/favorite/model/dto"
	"venuely/internal/domains/favorite/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"
	gRepo "venuely/shared/repository"

	"github.com/rs/zerolog/log"
)

const cacheDashboard = "dashboard"

type Favorite interface {
	Add(ctx context.Context, req dto.AddFavoriteRequest) (dto.FavoriteResponse, error)
	Remove(ctx context.Context, eventID string) error
	List(ctx context.Context) ([]dto.FavoriteEventResponse, error)
	ListEventIDs(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	repo  repository.Favorite
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Favorite, cache cache.RedisCache, otel otel.Otel) Favorite {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddFavoriteRequest) (res dto.FavoriteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	favorite := req.ToModel(organizer)

	if err = s.repo.Insert(ctx, favorite); err != nil {
		switch {
		case gRepo.IsUniqueViolation(err):
			return res, failure.AlreadyFavorited
		case gRepo.IsForeignKeyViolation(err):
			return res, failure.NotFound("event not found")
		}

		log.Error().Err(err).Msg("failed to add favorite")

		return res, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.invalidate(ctx, organizer)

	res.FromModel(favorite)

	return res, nil
}

func (s *serviceImpl) Remove(ctx context.Context, eventID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := shared.FilterByFields(model.TableName, model.FieldOrganizerID, organizer, model.FieldEventID, eventID)
	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove favorite")

		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	s.invalidate(ctx, organizer)

	return nil
}

// List returns the caller's favorites with their events, newest first. A failed read yields an
// empty list.
func (s *serviceImpl) List(ctx context.Context) (res []dto.FavoriteEventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	favorites, err := s.repo.GetAllWithEvent(ctx, params, shared.FilterByFields(model.TableName, model.FieldOrganizerID, organizer))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list favorites")

		return []dto.FavoriteEventResponse{}, nil
	}

	return dto.FromModels(favorites), nil
}

func (s *serviceImpl) ListEventIDs(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListEventIDs")
	defer scope.End()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	favorites, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByFields(model.TableName, model.FieldOrganizerID, organizer), model.FieldEventID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list favorite event ids")

		return []string{}, nil
	}

	res = make([]string, len(favorites))
	for i, favorite := range favorites {
		res[i] = favorite.EventID
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, organizer string) {
	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheDashboard, organizer)); err != nil {
			log.Error().Err(err).Msg("failed to delete dashboard from cache")
		}
	}()
}
