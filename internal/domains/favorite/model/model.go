package model

import (
	"time"
	"venuely/shared/model"
)

const (
	TableName  = "favorites"
	EntityName = "favorite"

	FieldID          = "id"
	FieldOrganizerID = "organizer_id"
	FieldEventID     = "event_id"

	EventsTable = "events"
)

type Favorite struct {
	ID          string `db:"id"`
	OrganizerID string `db:"organizer_id"`
	EventID     string `db:"event_id"`
	model.Metadata
}

// FavoriteEvent is a favorite joined with the event it bookmarks.
type FavoriteEvent struct {
	Favorite
	EventName   string    `column:"event_name"  db:"event_name"   table:"events"`
	EventType   string    `column:"event_type"  db:"event_type"   table:"events"`
	EventDate   time.Time `column:"event_date"  db:"event_date"   table:"events"`
	GuestCount  int       `column:"guest_count" db:"guest_count"  table:"events"`
	Budget      *float64  `column:"budget"      db:"budget"       table:"events"`
	Location    string    `column:"location"    db:"location"     table:"events"`
	EventStatus string    `column:"status"      db:"event_status" table:"events"`
	EventOwner  string    `column:"user_id"     db:"event_owner"  table:"events"`
}

func (FavoriteEvent) GetJoinQuery() string {
	return "JOIN events ON events.id = favorites.event_id"
}
