package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
	otelMocks "venuely/infras/otel/mocks"
	pgMocks "venuely/infras/postgres/mocks"
	chatMocks "venuely/internal/domains/chat/mocks"
	chatModel "venuely/internal/domains/chat/model"
	eventMocks "venuely/internal/domains/event/mocks"
	eventModel "venuely/internal/domains/event/model"
	hotelMocks "venuely/internal/domains/hotel/mocks"
	hotelModel "venuely/internal/domains/hotel/model"
	"venuely/internal/domains/invite/mocks"
	"venuely/internal/domains/invite/model"
	"venuely/internal/domains/invite/model/dto"
	"venuely/internal/domains/invite/service"
	realtimeMocks "venuely/internal/realtime/mocks"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	eventID   = "0b0c7a4e-6a57-4d4e-9d43-1f1f7b1f0001"
	hotelID   = "0b0c7a4e-6a57-4d4e-9d43-1f1f7b1f0002"
	otherHall = "0b0c7a4e-6a57-4d4e-9d43-1f1f7b1f0003"
)

type inviteMockSet struct {
	repo      *mocks.MockInvite
	chats     *chatMocks.MockChat
	events    *eventMocks.MockEvent
	hotels    *hotelMocks.MockHotel
	publisher *realtimeMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

func newInviteService(ctrl *gomock.Controller, transactorErr error) (service.Invite, inviteMockSet) {
	m := inviteMockSet{
		repo:      mocks.NewMockInvite(ctrl),
		chats:     chatMocks.NewMockChat(ctrl),
		events:    eventMocks.NewMockEvent(ctrl),
		hotels:    hotelMocks.NewMockHotel(ctrl),
		publisher: realtimeMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	transactor := pgMocks.NewTransactor()
	if transactorErr != nil {
		transactor = pgMocks.NewFailingTransactor(transactorErr)
	}

	return service.New(m.repo, m.chats, m.events, m.hotels, transactor, m.publisher, m.cache, otelMocks.NewOtel()), m
}

func ctxAs(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func ownedHotels(m inviteMockSet) {
	m.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]hotelModel.Hotel{{ID: hotelID, OrganizerID: "o-1", Name: "Pearl Continental"}}, nil)
}

func openEvent(m inviteMockSet, status string) {
	m.events.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(eventModel.Event{ID: eventID, UserID: "u-1", Status: status}, nil)
}

func TestInviteService_Send(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.SendInviteRequest
		setupMock func(m inviteMockSet)
		wantCode  int
	}{
		{
			name: "pending invite to the event owner with the default message",
			ctx:  ctxAs("o-1", constant.RoleOrganizer),
			req:  dto.SendInviteRequest{EventID: eventID},
			setupMock: func(m inviteMockSet) {
				ownedHotels(m)
				openEvent(m, eventModel.StatusOpen)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, invite model.Invite) error {
						assert.Equal(t, model.StatusPending, invite.Status)
						assert.Equal(t, "u-1", invite.UserID)
						assert.Equal(t, "o-1", invite.OrganizerID)
						assert.Equal(t, hotelID, invite.HotelID)
						assert.Equal(t, "We'd love to host your event at Pearl Continental!", invite.Message)

						return nil
					})
			},
		},
		{
			name: "second invite for the same event",
			ctx:  ctxAs("o-1", constant.RoleOrganizer),
			req:  dto.SendInviteRequest{EventID: eventID, Message: "msg2"},
			setupMock: func(m inviteMockSet) {
				ownedHotels(m)
				openEvent(m, eventModel.StatusOpen)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "organizer without venues",
			ctx:  ctxAs("o-1", constant.RoleOrganizer),
			req:  dto.SendInviteRequest{EventID: eventID},
			setupMock: func(m inviteMockSet) {
				m.hotels.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "user role cannot invite",
			ctx:       ctxAs("u-2", constant.RoleUser),
			req:       dto.SendInviteRequest{EventID: eventID},
			setupMock: func(inviteMockSet) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "hotel of another organizer",
			ctx:       ctxAs("o-1", constant.RoleOrganizer),
			req:       dto.SendInviteRequest{EventID: eventID, HotelID: otherHall},
			setupMock: ownedHotels,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "event no longer open",
			ctx:  ctxAs("o-1", constant.RoleOrganizer),
			req:  dto.SendInviteRequest{EventID: eventID},
			setupMock: func(m inviteMockSet) {
				ownedHotels(m)
				openEvent(m, eventModel.StatusCancelled)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "recipient is not the event owner",
			ctx:  ctxAs("o-1", constant.RoleOrganizer),
			req:  dto.SendInviteRequest{EventID: eventID, UserID: "u-9"},
			setupMock: func(m inviteMockSet) {
				ownedHotels(m)
				openEvent(m, eventModel.StatusOpen)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newInviteService(ctrl, nil)
			tt.setupMock(m)

			res, err := svc.Send(tt.ctx, tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestInviteService_Send_DuplicateIsAlreadyInvited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInviteService(ctrl, nil)
	ownedHotels(m)
	openEvent(m, eventModel.StatusOpen)
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

	_, err := svc.Send(ctxAs("o-1", constant.RoleOrganizer), dto.SendInviteRequest{EventID: eventID})

	assert.ErrorIs(t, err, failure.AlreadyInvited)
}

func pendingInvite() model.Invite {
	return model.Invite{ID: "i-1", EventID: eventID, HotelID: hotelID, OrganizerID: "o-1", UserID: "u-1", Status: model.StatusPending}
}

func TestInviteService_Act(t *testing.T) {
	tests := []struct {
		name          string
		caller        string
		action        string
		setupMock     func(m inviteMockSet)
		wantCode      int
		wantChat      string
		transactorErr error
	}{
		{
			name:   "accept creates exactly one chat between the two parties",
			caller: "u-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil)
				m.repo.EXPECT().UpdateAffectedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) (int64, error) {
						assert.Equal(t, model.StatusAccepted, fields[model.FieldStatus])

						return 1, nil
					})
				m.chats.EXPECT().InsertIgnoreConflictTx(gomock.Any(), gomock.Any(), gomock.Any(), chatModel.FieldInviteID).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, chat chatModel.Chat, _ ...string) (bool, error) {
						assert.Equal(t, "i-1", chat.InviteID)
						assert.Equal(t, "u-1", chat.UserID)
						assert.Equal(t, "o-1", chat.OrganizerID)

						return true, nil
					})
			},
		},
		{
			name:   "accept reuses an existing chat",
			caller: "u-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil)
				m.repo.EXPECT().UpdateAffectedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				m.chats.EXPECT().InsertIgnoreConflictTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.chats.EXPECT().Get(gomock.Any(), gomock.Any(), chatModel.FieldID).Return(chatModel.Chat{ID: "c-7"}, nil)
			},
			wantChat: "c-7",
		},
		{
			name:   "reject never creates a chat",
			caller: "u-1",
			action: model.StatusRejected,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil)
				m.repo.EXPECT().UpdateAffectedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name:   "accepted invite cannot be rejected",
			caller: "u-1",
			action: model.StatusRejected,
			setupMock: func(m inviteMockSet) {
				invite := pendingInvite()
				invite.Status = model.StatusAccepted
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(invite, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "only the recipient may act",
			caller: "o-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "missing invite",
			caller: "u-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Invite{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "concurrent decision wins the race",
			caller: "u-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				decided := pendingInvite()
				decided.Status = model.StatusRejected

				gomock.InOrder(
					m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil),
					m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(decided, nil),
				)
				m.repo.EXPECT().UpdateAffectedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "chat failure rolls the acceptance back",
			caller: "u-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil)
				m.repo.EXPECT().UpdateAffectedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				m.chats.EXPECT().InsertIgnoreConflictTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("disk full"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "transaction cannot begin",
			caller: "u-1",
			action: model.StatusAccepted,
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingInvite(), nil)
			},
			transactorErr: errors.New("too many connections"),
			wantCode:      http.StatusInternalServerError,
		},
		{
			name:      "unknown action",
			caller:    "u-1",
			action:    "maybe",
			setupMock: func(inviteMockSet) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newInviteService(ctrl, tt.transactorErr)
			tt.setupMock(m)

			res, err := svc.Act(ctxAs(tt.caller, constant.RoleUser), "i-1", dto.ActRequest{Action: tt.action})
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Nil(t, res.ChatID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "i-1", res.InviteID)
			assert.Equal(t, tt.action, res.Status)

			if tt.action == model.StatusRejected {
				assert.Nil(t, res.ChatID)
				assert.False(t, res.ChatAvailable)

				return
			}

			require.NotNil(t, res.ChatID)
			assert.True(t, res.ChatAvailable)

			if tt.wantChat != "" {
				assert.Equal(t, tt.wantChat, *res.ChatID)
			}
		})
	}
}

func TestInviteService_ListForOrganizer_HidesContactUntilAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInviteService(ctrl, nil)

	name, email := "Ayesha Khan", "ayesha@example.com"

	accepted := model.OrganizerInvite{Invite: pendingInvite(), RecipientName: &name, RecipientEmail: &email}
	accepted.ID = "i-accepted"
	accepted.Status = model.StatusAccepted

	pending := model.OrganizerInvite{Invite: pendingInvite()}
	pending.ID = "i-pending"

	rejected := model.OrganizerInvite{Invite: pendingInvite(), RecipientName: &name, RecipientEmail: &email}
	rejected.ID = "i-rejected"
	rejected.Status = model.StatusRejected

	m.repo.EXPECT().GetAllForOrganizer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.OrganizerInvite{accepted, pending, rejected}, nil)

	res, err := svc.ListForOrganizer(ctxAs("o-1", constant.RoleOrganizer))

	require.NoError(t, err)
	require.Len(t, res, 3)

	require.NotNil(t, res[0].Recipient)
	assert.Equal(t, "Ayesha Khan", res[0].Recipient.FullName)
	assert.Equal(t, "ayesha@example.com", res[0].Recipient.Email)
	assert.Nil(t, res[1].Recipient)
	assert.Nil(t, res[2].Recipient)
}

func TestInviteService_ListForUser(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m inviteMockSet)
		wantLen   int
	}{
		{
			name: "invites with hotel and event",
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().GetAllForUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.UserInvite{{Invite: pendingInvite(), HotelName: "Pearl Continental", EventName: "Barat"}}, nil)
			},
			wantLen: 1,
		},
		{
			name: "read failure yields empty list",
			setupMock: func(m inviteMockSet) {
				m.repo.EXPECT().GetAllForUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newInviteService(ctrl, nil)
			tt.setupMock(m)

			res, err := svc.ListForUser(ctxAs("u-1", constant.RoleUser))

			assert.NoError(t, err)
			assert.NotNil(t, res)
			assert.Len(t, res, tt.wantLen)

			if tt.wantLen > 0 {
				assert.Equal(t, "Pearl Continental", res[0].Hotel.Name)
				assert.Equal(t, hotelID, res[0].Hotel.ID)
			}
		})
	}
}
