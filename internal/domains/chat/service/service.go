package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"venuely/infras/otel"
	"venuely/internal/domains/chat/model"
	"venuely/internal/domains/chat/model/dto"
	"venuely/internal/domains/chat/repository"
	"venuely/internal/realtime"
	"venuely/shared"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"

	"github.com/rs/zerolog/log"
)

type Chat interface {
	ListChats(ctx context.Context) ([]dto.ChatResponse, error)
	ListMessages(ctx context.Context, chatID string) ([]dto.MessageResponse, error)
	SendMessage(ctx context.Context, chatID string, req dto.SendMessageRequest) (dto.MessageResponse, error)
	MarkRead(ctx context.Context, chatID string) (dto.MarkReadResponse, error)
	Authorize(ctx context.Context, chatID string) error
}

type serviceImpl struct {
	repo        repository.Chat
	messageRepo repository.Message
	publisher   realtime.Publisher
	otel        otel.Otel
}

func New(repo repository.Chat, messageRepo repository.Message, publisher realtime.Publisher, otel otel.Otel) Chat {
	return &serviceImpl{
		repo:        repo,
		messageRepo: messageRepo,
		publisher:   publisher,
		otel:        otel,
	}
}

// ListChats returns the caller's chats, newest first, each with the counterpart's profile.
// A failed read yields an empty list.
func (s *serviceImpl) ListChats(ctx context.Context) (res []dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListChats")
	defer scope.End()

	caller, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	var views []model.ChatView

	if role == constant.RoleOrganizer {
		chats, err := s.repo.GetAllForOrganizer(ctx, params, shared.FilterByFields(model.TableName, model.FieldOrganizerID, caller))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to list organizer chats")

			return []dto.ChatResponse{}, nil
		}

		for _, chat := range chats {
			views = append(views, chat.ChatView)
		}
	} else {
		chats, err := s.repo.GetAllForUser(ctx, params, shared.FilterByFields(model.TableName, model.FieldUserID, caller))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to list user chats")

			return []dto.ChatResponse{}, nil
		}

		for _, chat := range chats {
			views = append(views, chat.ChatView)
		}
	}

	res = make([]dto.ChatResponse, len(views))
	for i, view := range views {
		res[i].FromView(view, caller)
		res[i].UnreadCount = s.unread(ctx, view.ID, caller)
	}

	return res, nil
}

func (s *serviceImpl) ListMessages(ctx context.Context, chatID string) (res []dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.participant(ctx, chatID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	messages, err := s.messageRepo.GetAll(ctx, params, shared.FilterByFields(model.MessageTableName, model.FieldChatID, chatID))
	if err != nil {
		log.Error().Err(err).Msg("failed to list messages")

		return []dto.MessageResponse{}, nil
	}

	return dto.FromMessages(messages), nil
}

func (s *serviceImpl) SendMessage(ctx context.Context, chatID string, req dto.SendMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendMessage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	chat, err := s.participant(ctx, chatID)
	if err != nil {
		return res, err
	}

	sender, _ := ctx.Value(constant.ContextKeyUserID).(string)
	message := req.ToModel(chat.ID, sender)

	if len([]rune(message.Content)) > model.MaxMessageLength || message.Content == constant.Empty {
		return res, failure.BadRequestFromString(fmt.Sprintf("message must be between 1 and %d characters", model.MaxMessageLength))
	}

	if err = s.messageRepo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to send message")

		return res, fmt.Errorf("failed to send message: %w", err)
	}

	res.FromModel(message)

	realtime.PublishAsync(ctx, s.publisher,
		realtime.NewChange(realtime.ChatScope(chat.ID), model.MessageTableName, realtime.ChangeInsert, message.ID, res),
	)

	return res, nil
}

// MarkRead marks the counterpart's unread messages in the chat as read.
func (s *serviceImpl) MarkRead(ctx context.Context, chatID string) (res dto.MarkReadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	chat, err := s.participant(ctx, chatID)
	if err != nil {
		return res, err
	}

	caller, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updated, err := s.messageRepo.UpdateAffected(ctx, shared.TransformFields(dto.ReadFields{Read: true}, caller), unreadFilter(chat.ID, caller))
	if err != nil {
		log.Error().Err(err).Msg("failed to mark messages read")

		return res, fmt.Errorf("failed to mark messages read: %w", err)
	}

	res.Updated = updated

	if updated > 0 {
		realtime.PublishAsync(ctx, s.publisher,
			realtime.NewChange(realtime.ChatScope(chat.ID), model.MessageTableName, realtime.ChangeUpdate, chat.ID, res),
		)
	}

	return res, nil
}

// Authorize reports whether the caller takes part in the chat.
func (s *serviceImpl) Authorize(ctx context.Context, chatID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authorize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = s.participant(ctx, chatID)

	return err
}

func (s *serviceImpl) participant(ctx context.Context, chatID string) (model.Chat, error) {
	caller, _ := ctx.Value(constant.ContextKeyUserID).(string)

	chat, err := s.repo.Get(ctx, shared.FilterByID(chatID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get chat")

		return chat, fmt.Errorf("failed to get chat: %w", err)
	}

	if chat.ID == constant.Empty {
		return chat, failure.NotFound("chat not found")
	}

	if !chat.HasParticipant(caller) {
		return chat, failure.ResourceRestrictedError
	}

	return chat, nil
}

func (s *serviceImpl) unread(ctx context.Context, chatID, caller string) int {
	count, err := s.messageRepo.Count(ctx, unreadFilter(chatID, caller))
	if err != nil {
		log.Warn().Err(err).Str("chatID", chatID).Msg("failed to count unread messages")

		return 0
	}

	return count
}

func unreadFilter(chatID, reader string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldChatID, Value: chatID, Operator: gDto.FilterOperatorEq, Table: model.MessageTableName},
			gDto.Filter{Field: model.FieldSenderID, Value: reader, Operator: gDto.FilterOperatorNotEq, Table: model.MessageTableName},
			gDto.Filter{ArgName: "current_read", Field: model.FieldRead, Value: false, Operator: gDto.FilterOperatorEq, Table: model.MessageTableName},
		},
	}
}
