package realtime

import (
	"time"
	"venuely/shared/timezone"
)

const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// Change is one row-level notification delivered to subscribers of Scope.
type Change struct {
	Scope   string    `json:"scope"`
	Table   string    `json:"table"`
	Type    string    `json:"type"`
	ID      string    `json:"id"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

func NewChange(scope, table, kind, id string, payload any) Change {
	return Change{
		Scope:   scope,
		Table:   table,
		Type:    kind,
		ID:      id,
		Payload: payload,
		At:      timezone.Now(),
	}
}

func UserInvitesScope(userID string) string {
	return "invites:user:" + userID
}

func OrganizerInvitesScope(organizerID string) string {
	return "invites:organizer:" + organizerID
}

func UserChatsScope(userID string) string {
	return "chats:user:" + userID
}

func OrganizerChatsScope(organizerID string) string {
	return "chats:organizer:" + organizerID
}

func ChatScope(chatID string) string {
	return "chat:" + chatID
}
