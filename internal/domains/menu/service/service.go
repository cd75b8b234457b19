package service

import (
	"context"
	"fmt"
	"venuely/infras/otel"
	"venuely/internal/domains/menu/model"
	"venuely/internal/domains/menu/model/dto"
	"venuely/internal/domains/menu/repository"
	hotelModel "venuely/internal/domains/hotel/model"
	hotelRepo "venuely/internal/domains/hotel/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetHotel = "hotel:get"

type MenuBundle interface {
	Create(ctx context.Context, req dto.CreateMenuBundleRequest) (dto.MenuBundleResponse, error)
	ListByHotel(ctx context.Context, hotelID string) ([]dto.MenuBundleResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateMenuBundleRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.MenuBundle
	hotelRepo hotelRepo.Hotel
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.MenuBundle, hotelRepo hotelRepo.Hotel, cache cache.RedisCache, otel otel.Otel) MenuBundle {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMenuBundleRequest) (res dto.MenuBundleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ownHotel(ctx, req.HotelID, organizer); err != nil {
		return res, err
	}

	bundle := req.ToModel(organizer)

	if err = s.repo.Insert(ctx, bundle); err != nil {
		log.Error().Err(err).Msg("failed to create menu bundle")

		return res, fmt.Errorf("failed to create menu bundle: %w", err)
	}

	s.invalidate(ctx, bundle.HotelID)

	res.FromModel(bundle)

	return res, nil
}

func (s *serviceImpl) ListByHotel(ctx context.Context, hotelID string) (res []dto.MenuBundleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldFinalPrice, SortDir: gDto.SortDirAsc}

	bundles, err := s.repo.GetAll(ctx, params, shared.FilterByFields(model.TableName, model.FieldHotelID, hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to list menu bundles")

		return res, fmt.Errorf("failed to list menu bundles: %w", err)
	}

	return dto.FromModels(bundles), nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateMenuBundleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateMenuBundleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bundle, err := s.owned(ctx, id, organizer)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, organizer), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update menu bundle")

		return fmt.Errorf("failed to update menu bundle: %w", err)
	}

	s.invalidate(ctx, bundle.HotelID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bundle, err := s.owned(ctx, id, organizer)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete menu bundle")

		return fmt.Errorf("failed to delete menu bundle: %w", err)
	}

	s.invalidate(ctx, bundle.HotelID)

	return nil
}

// owned loads the bundle and checks that its hotel belongs to organizer.
func (s *serviceImpl) owned(ctx context.Context, id, organizer string) (model.MenuBundle, error) {
	bundle, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu bundle")

		return bundle, fmt.Errorf("failed to get menu bundle: %w", err)
	}

	if bundle.ID == constant.Empty {
		return bundle, failure.NotFound("menu bundle not found")
	}

	return bundle, s.ownHotel(ctx, bundle.HotelID, organizer)
}

func (s *serviceImpl) ownHotel(ctx context.Context, hotelID, organizer string) error {
	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName), hotelModel.FieldID, hotelModel.FieldOrganizerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found")
	}

	if hotel.OrganizerID != organizer {
		return failure.ResourceRestrictedError
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, hotelID string) {
	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetHotel, hotelID)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}
	}()
}
