package service

import (
	"context"
	"fmt"
	"venuely/infras/otel"
	"venuely/internal/domains/hall/model"
	"venuely/internal/domains/hall/model/dto"
	"venuely/internal/domains/hall/repository"
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

type Hall interface {
	Create(ctx context.Context, req dto.CreateHallRequest) (dto.HallResponse, error)
	ListByHotel(ctx context.Context, hotelID string) ([]dto.HallResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateHallRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Hall
	hotelRepo hotelRepo.Hotel
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Hall, hotelRepo hotelRepo.Hotel, cache cache.RedisCache, otel otel.Otel) Hall {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHallRequest) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ownHotel(ctx, req.HotelID, organizer); err != nil {
		return res, err
	}

	hall := req.ToModel(organizer)

	if err = s.repo.Insert(ctx, hall); err != nil {
		log.Error().Err(err).Msg("failed to create hall")

		return res, fmt.Errorf("failed to create hall: %w", err)
	}

	s.invalidate(ctx, hall.HotelID)

	res.FromModel(hall)

	return res, nil
}

func (s *serviceImpl) ListByHotel(ctx context.Context, hotelID string) (res []dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldCapacity, SortDir: gDto.SortDirAsc}

	halls, err := s.repo.GetAll(ctx, params, shared.FilterByFields(model.TableName, model.FieldHotelID, hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to list halls")

		return res, fmt.Errorf("failed to list halls: %w", err)
	}

	return dto.FromModels(halls), nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateHallRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHallRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hall, err := s.owned(ctx, id, organizer)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, organizer), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hall")

		return fmt.Errorf("failed to update hall: %w", err)
	}

	s.invalidate(ctx, hall.HotelID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hall, err := s.owned(ctx, id, organizer)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hall")

		return fmt.Errorf("failed to delete hall: %w", err)
	}

	s.invalidate(ctx, hall.HotelID)

	return nil
}

// owned loads the hall and checks that its hotel belongs to organizer.
func (s *serviceImpl) owned(ctx context.Context, id, organizer string) (model.Hall, error) {
	hall, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return hall, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == constant.Empty {
		return hall, failure.NotFound("hall not found")
	}

	return hall, s.ownHotel(ctx, hall.HotelID, organizer)
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
