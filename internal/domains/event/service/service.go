package service

import (
	"context"
	"fmt"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/internal/domains/event/model"
	"venuely/internal/domains/event/model/dto"
	"venuely/internal/domains/event/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheOpenEvents = "event:open"
	cacheDashboard  = "dashboard"
)

var sortable = []string{model.FieldEventDate, model.FieldGuestCount, model.FieldBudget, constant.FieldCreatedAt}

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	ListMine(ctx context.Context, params gDto.QueryParams) (dto.GetEventsResponse, error)
	ListOpen(ctx context.Context, params gDto.QueryParams) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateEventRequest) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Event
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := req.ToModel(user)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, params gDto.QueryParams) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	params.RestrictSort(sortable...)

	return s.list(ctx, params, shared.FilterByFields(model.TableName, model.FieldUserID, user))
}

// ListOpen returns events still accepting invites, newest first by default.
func (s *serviceImpl) ListOpen(ctx context.Context, params gDto.QueryParams) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOpen")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(sortable...)
	filter := shared.FilterByFields(model.TableName, model.FieldStatus, model.StatusOpen)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheOpenEvents, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for open events")

		return res, nil
	}

	res, err = s.list(ctx, params, filter)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save open events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	events, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(events, total, params.Limit)

	return res, nil
}

// Get returns the event to its owner, or to any organizer while it is open.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	visible := event.UserID == user || (role == constant.RoleOrganizer && event.Status == model.StatusOpen)
	if !visible {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateEventRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateEventRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.owned(ctx, id, user); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// UpdateStatus moves the event along open, in_progress, completed or cancelled.
// The update only applies while the stored status still equals the one that was checked.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := s.owned(ctx, id, user)
	if err != nil {
		return err
	}

	if !model.CanTransition(event.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("event cannot move from %s to %s", event.Status, req.Status))
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "current_status", Field: model.FieldStatus, Value: event.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	affected, err := s.repo.UpdateAffected(ctx, shared.TransformFields(dto.UpdateStatusFields{Status: req.Status}, user), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update event status")

		return fmt.Errorf("failed to update event status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("event status changed concurrently, reload and retry")
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.owned(ctx, id, user); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Event, error) {
	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return event, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return event, failure.NotFound("event not found")
	}

	return event, nil
}

func (s *serviceImpl) owned(ctx context.Context, id, user string) (model.Event, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return event, err
	}

	if event.UserID != user {
		return event, failure.ResourceRestrictedError
	}

	return event, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheOpenEvents)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)
	}()
}
