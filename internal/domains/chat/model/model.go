package model

import (
	"venuely/shared/model"
)

const (
	TableName  = "chats"
	EntityName = "chat"

	FieldID          = "id"
	FieldInviteID    = "invite_id"
	FieldUserID      = "user_id"
	FieldOrganizerID = "organizer_id"
)

const (
	MessageTableName  = "messages"
	MessageEntityName = "message"

	FieldMessageID = "id"
	FieldChatID    = "chat_id"
	FieldSenderID  = "sender_id"
	FieldContent   = "content"
	FieldRead      = "read"

	MaxMessageLength = 2000
)

type Chat struct {
	ID          string `db:"id"`
	InviteID    string `db:"invite_id"`
	UserID      string `db:"user_id"`
	OrganizerID string `db:"organizer_id"`
	model.Metadata
}

func (c Chat) HasParticipant(id string) bool {
	return id != "" && (c.UserID == id || c.OrganizerID == id)
}

// Counterpart returns the other participant.
func (c Chat) Counterpart(id string) string {
	if c.UserID == id {
		return c.OrganizerID
	}

	return c.UserID
}

// ChatView is a chat with the counterpart's profile and the context it was opened from.
type ChatView struct {
	Chat
	CounterpartName  string `column:"full_name"  db:"counterpart_name"  table:"profiles"`
	CounterpartEmail string `column:"email"      db:"counterpart_email" table:"profiles"`
	EventName        string `column:"event_name" db:"event_name"        table:"events"`
	HotelName        string `column:"name"       db:"hotel_name"        table:"hotels"`
}

// UserChat is the view of a chat from the event owner's side.
type UserChat struct {
	ChatView
}

func (UserChat) GetJoinQuery() string {
	return "JOIN profiles ON profiles.id = chats.organizer_id " +
		"JOIN invites ON invites.id = chats.invite_id " +
		"JOIN events ON events.id = invites.event_id " +
		"JOIN hotels ON hotels.id = invites.hotel_id"
}

// OrganizerChat is the view of a chat from the organizer's side.
type OrganizerChat struct {
	ChatView
}

func (OrganizerChat) GetJoinQuery() string {
	return "JOIN profiles ON profiles.id = chats.user_id " +
		"JOIN invites ON invites.id = chats.invite_id " +
		"JOIN events ON events.id = invites.event_id " +
		"JOIN hotels ON hotels.id = invites.hotel_id"
}

type Message struct {
	ID       string `db:"id"`
	ChatID   string `db:"chat_id"`
	SenderID string `db:"sender_id"`
	Content  string `db:"content"`
	Read     bool   `db:"read"`
	model.Metadata
}
