package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"venuely/infras/otel"
	chatService "venuely/internal/domains/chat/service"
	"venuely/internal/realtime"
	"venuely/shared/constant"
	"venuely/shared/failure"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const heartbeatInterval = 25 * time.Second

type Handler struct {
	hub         *realtime.Hub
	chatService chatService.Chat
	otel        otel.Otel
	heartbeat   time.Duration
}

func New(hub *realtime.Hub, chatService chatService.Chat, otel otel.Otel) Handler {
	return Handler{
		hub:         hub,
		chatService: chatService,
		otel:        otel,
		heartbeat:   heartbeatInterval,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/realtime/stream", handler.Stream)
}

// Stream pushes row changes for one scope as server-sent events
// @Summary Subscribe to changes
// @Description scope is one of invites:user:<id>, invites:organizer:<id>, chats:user:<id>, chats:organizer:<id> or chat:<chat id>.
// @Tags Realtime
// @Produce text/event-stream
// @Param scope query string true "Scope"
// @Success 200 {object} realtime.Change
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/realtime/stream [get]
// @Security BearerAuth
func (handler *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stream")

	topic := r.URL.Query().Get(constant.RequestParamScope)

	if err := handler.authorize(ctx, topic); err != nil {
		scope.TraceError(err)
		scope.End()

		response.WithError(w, err)

		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		scope.End()

		response.WithError(w, failure.Unimplemented("streaming is not supported"))

		return
	}

	scope.AddEvent("Subscribed to " + topic)
	scope.End()

	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	changes, unsubscribe := handler.hub.Subscribe(topic)
	defer unsubscribe()

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(handler.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case change, open := <-changes:
			if !open {
				return
			}

			data, err := json.Marshal(change)
			if err != nil {
				log.Error().Err(err).Str("scope", topic).Msg("failed to marshal change")

				continue
			}

			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", strings.ToLower(change.Type), data)
			flusher.Flush()
		}
	}
}

// authorize lets a caller follow only their own invite and chat lists, and chats they take part in.
func (handler *Handler) authorize(ctx context.Context, topic string) error {
	caller, _ := ctx.Value(constant.ContextKeyUserID).(string)

	switch topic {
	case constant.Empty:
		return failure.BadRequestFromString("scope is required")
	case realtime.UserInvitesScope(caller),
		realtime.OrganizerInvitesScope(caller),
		realtime.UserChatsScope(caller),
		realtime.OrganizerChatsScope(caller):
		return nil
	}

	if chatID, ok := strings.CutPrefix(topic, realtime.ChatScope("")); ok && chatID != constant.Empty {
		return handler.chatService.Authorize(ctx, chatID)
	}

	if strings.HasPrefix(topic, "invites:") || strings.HasPrefix(topic, "chats:") {
		return failure.ResourceRestrictedError
	}

	return failure.BadRequestFromString("unknown scope " + topic)
}
