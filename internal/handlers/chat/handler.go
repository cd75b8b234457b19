package chat

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/chat/model/dto"
	"venuely/internal/domains/chat/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/chats", func(r chi.Router) {
		r.Get("/", handler.ListChats)
		r.Get("/{id}/messages", handler.ListMessages)
		r.Post("/{id}/messages", handler.SendMessage)
		r.Post("/{id}/read", handler.MarkRead)
	})
}

// ListChats lists the caller's chats
// @Summary List chats
// @Tags Chat
// @Produce json
// @Success 200 {array} dto.ChatResponse
// @Router /v1/chats [get]
// @Security BearerAuth
func (handler *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListChats")
	defer scope.End()

	res, err := handler.service.ListChats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list chats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListMessages returns a chat's messages, oldest first
// @Summary List messages
// @Tags Chat
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {array} dto.MessageResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/chats/{id}/messages [get]
// @Security BearerAuth
func (handler *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMessages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListMessages(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list messages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendMessage appends a message to a chat
// @Summary Send message
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Chat ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/chats/{id}/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.SendMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendMessage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// MarkRead marks the counterpart's messages as read
// @Summary Mark chat read
// @Tags Chat
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} dto.MarkReadResponse
// @Router /v1/chats/{id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkChatRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.MarkRead(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark chat read")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
