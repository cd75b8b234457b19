package model

import (
	"time"
	gDto "venuely/shared/dto"
	"venuely/shared/model"
)

const (
	TableName  = "invites"
	EntityName = "invite"

	FieldID          = "id"
	FieldEventID     = "event_id"
	FieldHotelID     = "hotel_id"
	FieldOrganizerID = "organizer_id"
	FieldUserID      = "user_id"
	FieldMessage     = "message"
	FieldStatus      = "status"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

func IsTerminal(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// PendingFilter matches the invite only while it is still pending and addressed to recipient,
// so a status update can succeed at most once.
func PendingFilter(id, recipient string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: TableName},
			gDto.Filter{Field: FieldUserID, Value: recipient, Operator: gDto.FilterOperatorEq, Table: TableName},
			gDto.Filter{ArgName: "current_status", Field: FieldStatus, Value: StatusPending, Operator: gDto.FilterOperatorEq, Table: TableName},
		},
	}
}

type Invite struct {
	ID          string `db:"id"`
	EventID     string `db:"event_id"`
	HotelID     string `db:"hotel_id"`
	OrganizerID string `db:"organizer_id"`
	UserID      string `db:"user_id"`
	Message     string `db:"message"`
	Status      string `db:"status"`
	model.Metadata
}

// UserInvite is an invite as its recipient sees it: who is inviting and to which event.
type UserInvite struct {
	Invite
	HotelName     string    `column:"name"       db:"hotel_name"      table:"hotels"`
	HotelImageURL *string   `column:"image_url"  db:"hotel_image_url" table:"hotels"`
	HotelCity     string    `column:"city"       db:"hotel_city"      table:"hotels"`
	EventName     string    `column:"event_name" db:"event_name"      table:"events"`
	EventDate     time.Time `column:"event_date" db:"event_date"      table:"events"`
}

func (UserInvite) GetJoinQuery() string {
	return "JOIN hotels ON hotels.id = invites.hotel_id JOIN events ON events.id = invites.event_id"
}

// OrganizerInvite is an invite as its sender sees it. The recipient's contact columns stay
// NULL until the invite is accepted.
type OrganizerInvite struct {
	Invite
	HotelName        string    `column:"name"        db:"hotel_name"        table:"hotels"`
	EventName        string    `column:"event_name"  db:"event_name"        table:"events"`
	EventType        string    `column:"event_type"  db:"event_type"        table:"events"`
	EventDate        time.Time `column:"event_date"  db:"event_date"        table:"events"`
	GuestCount       int       `column:"guest_count" db:"guest_count"       table:"events"`
	Location         string    `column:"location"    db:"location"          table:"events"`
	RecipientName    *string   `column:"full_name"   db:"recipient_name"    table:"profiles"`
	RecipientEmail   *string   `column:"email"       db:"recipient_email"   table:"profiles"`
	RecipientPhone   *string   `column:"phone"       db:"recipient_phone"   table:"profiles"`
	RecipientAddress *string   `column:"address"     db:"recipient_address" table:"profiles"`
}

func (OrganizerInvite) GetJoinQuery() string {
	return "JOIN hotels ON hotels.id = invites.hotel_id " +
		"JOIN events ON events.id = invites.event_id " +
		"LEFT JOIN profiles ON profiles.id = invites.user_id AND invites.status = '" + StatusAccepted + "'"
}
