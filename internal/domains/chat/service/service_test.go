package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/domains/chat/mocks"
	"venuely/internal/domains/chat/model"
	"venuely/internal/domains/chat/model/dto"
	"venuely/internal/domains/chat/service"
	"venuely/internal/realtime"
	realtimeMocks "venuely/internal/realtime/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var stored = model.Chat{ID: "c-1", InviteID: "i-1", UserID: "u-1", OrganizerID: "o-1"}

type chatMockSet struct {
	chats     *mocks.MockChat
	messages  *mocks.MockMessage
	publisher *realtimeMocks.MockPublisher
}

func newChatService(ctrl *gomock.Controller) (service.Chat, chatMockSet) {
	m := chatMockSet{
		chats:     mocks.NewMockChat(ctrl),
		messages:  mocks.NewMockMessage(ctrl),
		publisher: realtimeMocks.NewMockPublisher(ctrl),
	}

	return service.New(m.chats, m.messages, m.publisher, otelMocks.NewOtel()), m
}

func callerCtx(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestChatService_ListChats(t *testing.T) {
	view := model.ChatView{Chat: stored, CounterpartName: "Ayesha", CounterpartEmail: "ayesha@example.com", EventName: "Mehndi"}

	tests := []struct {
		name            string
		ctx             context.Context
		setupMock       func(m chatMockSet)
		wantCount       int
		wantCounterpart string
	}{
		{
			name: "user sees organizer as counterpart",
			ctx:  callerCtx("u-1", constant.RoleUser),
			setupMock: func(m chatMockSet) {
				m.chats.EXPECT().GetAllForUser(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.UserChat{{ChatView: view}}, nil)
				m.messages.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantCount:       1,
			wantCounterpart: "o-1",
		},
		{
			name: "organizer sees user as counterpart",
			ctx:  callerCtx("o-1", constant.RoleOrganizer),
			setupMock: func(m chatMockSet) {
				m.chats.EXPECT().GetAllForOrganizer(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.OrganizerChat{{ChatView: view}}, nil)
				m.messages.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantCount:       1,
			wantCounterpart: "u-1",
		},
		{
			name: "read failure yields empty list",
			ctx:  callerCtx("u-1", constant.RoleUser),
			setupMock: func(m chatMockSet) {
				m.chats.EXPECT().GetAllForUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newChatService(ctrl)
			tt.setupMock(m)

			res, err := svc.ListChats(tt.ctx)

			assert.NoError(t, err)
			assert.NotNil(t, res)
			require.Len(t, res, tt.wantCount)

			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantCounterpart, res[0].Counterpart.ID)
				assert.Equal(t, 2, res[0].UnreadCount)
			}
		})
	}
}

func TestChatService_SendMessage(t *testing.T) {
	tests := []struct {
		name      string
		caller    string
		content   string
		setupMock func(m chatMockSet, wg *sync.WaitGroup)
		wantCode  int
	}{
		{
			name:    "participant sends and the chat scope is notified",
			caller:  "o-1",
			content: "  Our lawn seats 600  ",
			setupMock: func(m chatMockSet, wg *sync.WaitGroup) {
				wg.Add(1)
				m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, message model.Message) error {
						assert.Equal(t, "Our lawn seats 600", message.Content)
						assert.Equal(t, "o-1", message.SenderID)
						assert.False(t, message.Read)

						return nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, changes ...realtime.Change) error {
						defer wg.Done()

						assert.Equal(t, "chat:c-1", changes[0].Scope)

						return nil
					})
			},
		},
		{
			name:      "outsider",
			caller:    "o-2",
			content:   "hello",
			setupMock: func(chatMockSet, *sync.WaitGroup) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "too long",
			caller:    "u-1",
			content:   strings.Repeat("a", 2001),
			setupMock: func(chatMockSet, *sync.WaitGroup) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var wg sync.WaitGroup

			svc, m := newChatService(ctrl)
			m.chats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			tt.setupMock(m, &wg)

			res, err := svc.SendMessage(callerCtx(tt.caller, constant.RoleUser), "c-1", dto.SendMessageRequest{Content: tt.content})
			wg.Wait()

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "c-1", res.ChatID)
		})
	}
}

func TestChatService_ListMessages_MissingChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	m.chats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Chat{}, nil)

	_, err := svc.ListMessages(callerCtx("u-1", constant.RoleUser), "c-404")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestChatService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	m.chats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
	m.messages.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Message{
		{ID: "m-1", ChatID: "c-1", SenderID: "o-1", Content: "Salam"},
		{ID: "m-2", ChatID: "c-1", SenderID: "u-1", Content: "Walaikum salam"},
	}, nil)

	res, err := svc.ListMessages(callerCtx("u-1", constant.RoleUser), "c-1")

	assert.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "m-1", res[0].ID)
}

func TestChatService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var wg sync.WaitGroup

	wg.Add(1)

	svc, m := newChatService(ctrl)
	m.chats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
	m.messages.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) (int64, error) {
			assert.Equal(t, true, fields[model.FieldRead])

			return 3, nil
		})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...realtime.Change) error {
			wg.Done()

			return nil
		})

	res, err := svc.MarkRead(callerCtx("u-1", constant.RoleUser), "c-1")
	wg.Wait()

	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.Updated)
}
