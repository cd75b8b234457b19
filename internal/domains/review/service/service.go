package service

import (
	"context"
	"fmt"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/internal/domains/review/model"
	"venuely/internal/domains/review/model/dto"
	"venuely/internal/domains/review/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"
	gRepo "venuely/shared/repository"

	"github.com/rs/zerolog/log"
)

const cacheHotelReviews = "review:hotel"

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	ListByHotel(ctx context.Context, hotelID string) (dto.HotelReviewsResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role != constant.RoleUser {
		return res, failure.ForbiddenError
	}

	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return res, failure.BadRequestFromString(fmt.Sprintf("rating must be between %d and %d", model.MinRating, model.MaxRating))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	review := req.ToModel(user)

	if err = s.repo.Insert(ctx, review); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.NotFound("hotel not found")
		}

		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheHotelReviews, review.HotelID)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel reviews from cache")
		}
	}()

	res.FromModel(review)

	return res, nil
}

// ListByHotel returns a hotel's reviews, newest first, with the average rating.
func (s *serviceImpl) ListByHotel(ctx context.Context, hotelID string) (res dto.HotelReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByHotel")
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheHotelReviews, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	reviews, err := s.repo.GetAllWithAuthor(ctx, params, shared.FilterByFields(model.TableName, model.FieldHotelID, hotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reviews")

		res.FromModels(nil)

		return res, nil
	}

	res.FromModels(reviews)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel reviews to cache")
		}
	}()

	return res, nil
}
