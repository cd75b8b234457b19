package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	chatModel "venuely/internal/domains/chat/model"
	chatRepo "venuely/internal/domains/chat/repository"
	eventModel "venuely/internal/domains/event/model"
	eventRepo "venuely/internal/domains/event/repository"
	hotelModel "venuely/internal/domains/hotel/model"
	hotelRepo "venuely/internal/domains/hotel/repository"
	"venuely/internal/domains/invite/model"
	"venuely/internal/domains/invite/model/dto"
	"venuely/internal/domains/invite/repository"
	"venuely/internal/realtime"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"
	gModel "venuely/shared/model"
	gRepo "venuely/shared/repository"
	"venuely/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheDashboard = "dashboard"

type Invite interface {
	Send(ctx context.Context, req dto.SendInviteRequest) (dto.InviteResponse, error)
	Act(ctx context.Context, id string, req dto.ActRequest) (dto.ActResponse, error)
	ListForUser(ctx context.Context) ([]dto.UserInviteResponse, error)
	ListForOrganizer(ctx context.Context) ([]dto.OrganizerInviteResponse, error)
	ListInvitedEventIDs(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	repo       repository.Invite
	chatRepo   chatRepo.Chat
	eventRepo  eventRepo.Event
	hotelRepo  hotelRepo.Hotel
	transactor postgres.Transactor
	publisher  realtime.Publisher
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Invite,
	chatRepo chatRepo.Chat,
	eventRepo eventRepo.Event,
	hotelRepo hotelRepo.Hotel,
	transactor postgres.Transactor,
	publisher realtime.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Invite {
	return &serviceImpl{
		repo:       repo,
		chatRepo:   chatRepo,
		eventRepo:  eventRepo,
		hotelRepo:  hotelRepo,
		transactor: transactor,
		publisher:  publisher,
		cache:      cache,
		otel:       otel,
	}
}

// Send invites the owner of an open event to one of the caller's venues. Without a hotel id the
// caller's oldest venue is used.
func (s *serviceImpl) Send(ctx context.Context, req dto.SendInviteRequest) (res dto.InviteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role != constant.RoleOrganizer {
		return res, failure.ForbiddenError
	}

	hotel, err := s.pickHotel(ctx, organizer, req.HotelID)
	if err != nil {
		return res, err
	}

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(req.EventID, eventModel.FieldID, eventModel.TableName),
		eventModel.FieldID, eventModel.FieldUserID, eventModel.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("event not found")
	}

	if event.Status != eventModel.StatusOpen {
		return res, failure.Conflict("event is no longer accepting invites")
	}

	if req.UserID != constant.Empty && req.UserID != event.UserID {
		return res, failure.BadRequestFromString("invite recipient must be the event owner")
	}

	message := req.Message
	if message == constant.Empty {
		message = dto.DefaultMessage(hotel.Name)
	}

	invite := req.ToModel(organizer, hotel.ID, event.UserID, message)

	if err = s.repo.Insert(ctx, invite); err != nil {
		switch {
		case gRepo.IsUniqueViolation(err):
			return res, failure.AlreadyInvited
		case gRepo.IsForeignKeyViolation(err):
			return res, failure.NotFound("event not found")
		}

		log.Error().Err(err).Msg("failed to send invite")

		return res, fmt.Errorf("failed to send invite: %w", err)
	}

	res.FromModel(invite)

	realtime.PublishAsync(ctx, s.publisher,
		realtime.NewChange(realtime.UserInvitesScope(invite.UserID), model.TableName, realtime.ChangeInsert, invite.ID, res),
		realtime.NewChange(realtime.OrganizerInvitesScope(organizer), model.TableName, realtime.ChangeInsert, invite.ID, res),
	)
	s.invalidate(ctx, organizer)

	return res, nil
}

// Act moves a pending invite to accepted or rejected. Acceptance and its chat are committed
// together.
func (s *serviceImpl) Act(ctx context.Context, id string, req dto.ActRequest) (res dto.ActResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Act")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Action != model.StatusAccepted && req.Action != model.StatusRejected {
		return res, failure.BadRequestFromString("action must be accepted or rejected")
	}

	invite, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if err = checkActionable(invite, caller); err != nil {
		return res, err
	}

	res = dto.ActResponse{InviteID: invite.ID, Status: req.Action}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateAffectedTx(ctx, tx, shared.TransformFields(dto.StatusFields{Status: req.Action}, caller), model.PendingFilter(invite.ID, caller))
		if err != nil {
			return fmt.Errorf("failed to update invite status: %w", err)
		}

		if affected == 0 {
			return s.explainNoop(ctx, invite.ID, caller)
		}

		if req.Action != model.StatusAccepted {
			return nil
		}

		chatID, err := s.openChat(ctx, tx, invite)
		if err != nil {
			return err
		}

		res.ChatID = &chatID
		res.ChatAvailable = true

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("inviteID", invite.ID).Str("action", req.Action).Msg("failed to act on invite")

		return dto.ActResponse{}, err
	}

	invite.Status = req.Action
	s.announce(ctx, invite, res)
	s.invalidate(ctx, invite.OrganizerID)

	return res, nil
}

// ListForUser returns invites addressed to the caller, newest first. A failed read yields an
// empty list.
func (s *serviceImpl) ListForUser(ctx context.Context) (res []dto.UserInviteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	invites, err := s.repo.GetAllForUser(ctx, newestFirst(), shared.FilterByFields(model.TableName, model.FieldUserID, user))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list received invites")

		return []dto.UserInviteResponse{}, nil
	}

	return dto.FromUserInvites(invites), nil
}

// ListForOrganizer returns invites the caller sent, newest first. Recipient contact details are
// only present on accepted invites.
func (s *serviceImpl) ListForOrganizer(ctx context.Context) (res []dto.OrganizerInviteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForOrganizer")
	defer scope.End()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	invites, err := s.repo.GetAllForOrganizer(ctx, newestFirst(), shared.FilterByFields(model.TableName, model.FieldOrganizerID, organizer))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list sent invites")

		return []dto.OrganizerInviteResponse{}, nil
	}

	return dto.FromOrganizerInvites(invites), nil
}

func (s *serviceImpl) ListInvitedEventIDs(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListInvitedEventIDs")
	defer scope.End()

	organizer, _ := ctx.Value(constant.ContextKeyUserID).(string)

	invites, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByFields(model.TableName, model.FieldOrganizerID, organizer), model.FieldEventID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list invited event ids")

		return []string{}, nil
	}

	res = make([]string, len(invites))
	for i, invite := range invites {
		res[i] = invite.EventID
	}

	return res, nil
}

func (s *serviceImpl) pickHotel(ctx context.Context, organizer, hotelID string) (hotelModel.Hotel, error) {
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	hotels, err := s.hotelRepo.GetAll(ctx, params, shared.FilterByFields(hotelModel.TableName, hotelModel.FieldOrganizerID, organizer),
		hotelModel.FieldID, hotelModel.FieldOrganizerID, hotelModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get organizer hotels")

		return hotelModel.Hotel{}, fmt.Errorf("failed to get organizer hotels: %w", err)
	}

	if len(hotels) == 0 {
		return hotelModel.Hotel{}, failure.NoVenueListed
	}

	if hotelID == constant.Empty {
		return hotels[0], nil
	}

	for _, hotel := range hotels {
		if hotel.ID == hotelID {
			return hotel, nil
		}
	}

	return hotelModel.Hotel{}, failure.ResourceRestrictedError
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Invite, error) {
	invite, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invite")

		return invite, fmt.Errorf("failed to get invite: %w", err)
	}

	if invite.ID == constant.Empty {
		return invite, failure.NotFound("invite not found")
	}

	return invite, nil
}

// explainNoop turns a conditional update that matched nothing into the reason it did not.
func (s *serviceImpl) explainNoop(ctx context.Context, id, caller string) error {
	invite, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = checkActionable(invite, caller); err != nil {
		return err
	}

	return failure.Conflict("invite could not be updated, try again")
}

// openChat creates the chat for an accepted invite, or returns the one that already exists.
func (s *serviceImpl) openChat(ctx context.Context, tx *sqlx.Tx, invite model.Invite) (string, error) {
	now := timezone.Now()

	chat := chatModel.Chat{
		ID:          uuid.NewString(),
		InviteID:    invite.ID,
		UserID:      invite.UserID,
		OrganizerID: invite.OrganizerID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  invite.UserID,
			ModifiedBy: invite.UserID,
		},
	}

	inserted, err := s.chatRepo.InsertIgnoreConflictTx(ctx, tx, chat, chatModel.FieldInviteID)
	if err != nil {
		return "", fmt.Errorf("failed to create chat: %w", err)
	}

	if inserted {
		return chat.ID, nil
	}

	existing, err := s.chatRepo.Get(ctx, shared.FilterByFields(chatModel.TableName, chatModel.FieldInviteID, invite.ID), chatModel.FieldID)
	if err != nil {
		return "", fmt.Errorf("failed to get existing chat: %w", err)
	}

	if existing.ID == constant.Empty {
		return "", failure.Conflict("chat for this invite is not visible yet, try again")
	}

	return existing.ID, nil
}

func (s *serviceImpl) announce(ctx context.Context, invite model.Invite, res dto.ActResponse) {
	changes := []realtime.Change{
		realtime.NewChange(realtime.UserInvitesScope(invite.UserID), model.TableName, realtime.ChangeUpdate, invite.ID, res),
		realtime.NewChange(realtime.OrganizerInvitesScope(invite.OrganizerID), model.TableName, realtime.ChangeUpdate, invite.ID, res),
	}

	if res.ChatID != nil {
		changes = append(changes,
			realtime.NewChange(realtime.UserChatsScope(invite.UserID), chatModel.TableName, realtime.ChangeInsert, *res.ChatID, res),
			realtime.NewChange(realtime.OrganizerChatsScope(invite.OrganizerID), chatModel.TableName, realtime.ChangeInsert, *res.ChatID, res),
		)
	}

	realtime.PublishAsync(ctx, s.publisher, changes...)
}

func (s *serviceImpl) invalidate(ctx context.Context, organizer string) {
	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheDashboard, organizer)); err != nil {
			log.Error().Err(err).Msg("failed to delete dashboard from cache")
		}
	}()
}

func checkActionable(invite model.Invite, caller string) error {
	if invite.UserID != caller {
		return failure.ResourceRestrictedError
	}

	if model.IsTerminal(invite.Status) {
		return failure.Conflict("invite already " + invite.Status)
	}

	return nil
}

func newestFirst() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}
}
