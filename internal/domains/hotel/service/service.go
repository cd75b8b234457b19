package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/infras/s3"
	hallModel "venuely/internal/domains/hall/model"
	hallDto "venuely/internal/domains/hall/model/dto"
	hallRepo "venuely/internal/domains/hall/repository"
	"venuely/internal/domains/hotel/model"
	"venuely/internal/domains/hotel/model/dto"
	"venuely/internal/domains/hotel/repository"
	menuModel "venuely/internal/domains/menu/model"
	menuDto "venuely/internal/domains/menu/model/dto"
	menuRepo "venuely/internal/domains/menu/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"
	"venuely/shared/media"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel   = "hotel:get"
	cacheListHotels = "hotel:list"
	cacheDashboard  = "dashboard"
	cacheReviews    = "review:hotel"

	mediaDirectory = "hotels"
)

var sortable = []string{model.FieldName, model.FieldCity, constant.FieldCreatedAt}

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	ListMine(ctx context.Context) ([]dto.HotelResponse, error)
	List(ctx context.Context, params gDto.QueryParams, city string) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelDetailResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateHotelRequest) error
	Delete(ctx context.Context, id string) error
	UploadMedia(ctx context.Context, req dto.UploadMediaRequest) (dto.UploadMediaResponse, error)
}

type serviceImpl struct {
	repo     repository.Hotel
	hallRepo hallRepo.Hall
	menuRepo menuRepo.MenuBundle
	s3       s3.S3
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Hotel,
	hallRepo hallRepo.Hall,
	menuRepo menuRepo.MenuBundle,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:     repo,
		hallRepo: hallRepo,
		menuRepo: menuRepo,
		s3:       s3,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkMediaLimits(len(req.ImageURLs), len(req.VideoURLs)); err != nil {
		return res, err
	}

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	hotel := req.ToModel(organizer)

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	s.invalidate(ctx, hotel.ID)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	hotels, err := s.repo.GetAll(ctx, params, shared.FilterByFields(model.TableName, model.FieldOrganizerID, organizer))
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotels")

		return res, fmt.Errorf("failed to list hotels: %w", err)
	}

	res = make([]dto.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		res[i].FromModel(hotel)
	}

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, city string) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(sortable...)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}
	if city != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Value:    city,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListHotels, params, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	hotels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotels")

		return res, fmt.Errorf("failed to list hotels: %w", err)
	}

	res.FromModels(hotels, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

// Get returns the hotel with its halls and menu bundles.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	byHotel := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	halls, err := s.hallRepo.GetAll(ctx, byHotel, shared.FilterByFields(hallModel.TableName, hallModel.FieldHotelID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get halls")

		return res, fmt.Errorf("failed to get halls: %w", err)
	}

	menus, err := s.menuRepo.GetAll(ctx, byHotel, shared.FilterByFields(menuModel.TableName, menuModel.FieldHotelID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu bundles")

		return res, fmt.Errorf("failed to get menu bundles: %w", err)
	}

	res.FromModel(hotel)
	res.Halls = hallDto.FromModels(halls)
	res.MenuBundles = menuDto.FromModels(menus)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hotel, err := s.owned(ctx, id, organizer)
	if err != nil {
		return err
	}

	images, videos := len(hotel.ImageURLs), len(hotel.VideoURLs)
	if req.ImageURLs != nil {
		images = len(*req.ImageURLs)
	}

	if req.VideoURLs != nil {
		videos = len(*req.VideoURLs)
	}

	if err = checkMediaLimits(images, videos); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, organizer), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes the hotel. Halls, menu bundles, reviews and invites go with it through the foreign keys.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hotel, err := s.owned(ctx, id, organizer)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheReviews, id)); err != nil {
			log.Warn().Err(err).Msg("failed to delete hotel reviews from cache")
		}

		for _, url := range hotel.MediaURLs() {
			if err := s.s3.Remove(c, url); err != nil && !errors.Is(err, s3.ErrForeignURL) {
				log.Warn().Err(err).Str("url", url).Msg("failed to remove hotel media")
			}
		}
	}()

	return nil
}

// UploadMedia stores one image, video or parking picture and returns its public URL.
// Linking the URL to a hotel is done by Create or Update.
func (s *serviceImpl) UploadMedia(ctx context.Context, req dto.UploadMediaRequest) (res dto.UploadMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadMedia")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kind, err := media.ParseKind(req.Kind)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = media.Check(s.cfg, kind, req.ContentType, req.Size); err != nil {
		return res, err //nolint:wrapcheck
	}

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	url, err := s.s3.Put(ctx, s3.Object{
		Directory:   path.Join(mediaDirectory, organizer),
		Name:        media.ObjectName(req.FileName, req.ContentType),
		ContentType: req.ContentType,
		Body:        req.File,
		Size:        req.Size,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hotel media")

		return res, fmt.Errorf("failed to upload hotel media: %w", err)
	}

	res.URL = url
	res.Kind = string(kind)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Hotel, error) {
	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return hotel, failure.NotFound("hotel not found")
	}

	return hotel, nil
}

func (s *serviceImpl) owned(ctx context.Context, id, organizer string) (model.Hotel, error) {
	hotel, err := s.find(ctx, id)
	if err != nil {
		return hotel, err
	}

	if hotel.OrganizerID != organizer {
		return hotel, failure.ResourceRestrictedError
	}

	return hotel, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheListHotels)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)
	}()
}

func checkMediaLimits(images, videos int) error {
	if images > model.MaxImages {
		return failure.BadRequestFromString(fmt.Sprintf("a venue can have at most %d images", model.MaxImages))
	}

	if videos > model.MaxVideos {
		return failure.BadRequestFromString(fmt.Sprintf("a venue can have at most %d videos", model.MaxVideos))
	}

	return nil
}
