package dto

import (
	"strings"
	"time"
	"venuely/internal/domains/chat/model"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type ChatResponse struct {
	ID          string    `json:"id"`
	InviteID    string    `json:"invite_id"`
	UserID      string    `json:"user_id"`
	OrganizerID string    `json:"organizer_id"`
	EventName   string    `json:"event_name"`
	HotelName   string    `json:"hotel_name"`
	Counterpart Party     `json:"counterpart"`
	UnreadCount int       `json:"unread_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Party struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (r *ChatResponse) FromView(view model.ChatView, caller string) {
	r.ID = view.ID
	r.InviteID = view.InviteID
	r.UserID = view.UserID
	r.OrganizerID = view.OrganizerID
	r.EventName = view.EventName
	r.HotelName = view.HotelName
	r.Counterpart = Party{
		ID:       view.Counterpart(caller),
		FullName: view.CounterpartName,
		Email:    view.CounterpartEmail,
	}
	r.CreatedAt = view.CreatedAt
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,notblank,max=2000"`
}

func (s *SendMessageRequest) ToModel(chatID, sender string) model.Message {
	now := timezone.Now()

	return model.Message{
		ID:       uuid.NewString(),
		ChatID:   chatID,
		SenderID: sender,
		Content:  strings.TrimSpace(s.Content),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  sender,
			ModifiedBy: sender,
		},
	}
}

type MessageResponse struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.ChatID = model.ChatID
	r.SenderID = model.SenderID
	r.Content = model.Content
	r.Read = model.Read
	r.CreatedAt = model.CreatedAt
}

func FromMessages(models []model.Message) []MessageResponse {
	res := make([]MessageResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

type ReadFields struct {
	Read bool `db:"read"`
}
