package model

import (
	"slices"
	"time"
	"venuely/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldEventName       = "event_name"
	FieldEventType       = "event_type"
	FieldEventDate       = "event_date"
	FieldGuestCount      = "guest_count"
	FieldBudget          = "budget"
	FieldLocation        = "location"
	FieldRequirements    = "requirements"
	FieldCatering        = "catering"
	FieldPhotography     = "photography"
	FieldHotelDecoration = "hotel_decoration"
	FieldFireworks       = "fireworks"
	FieldStatus          = "status"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// transitions lists the statuses reachable from each status. Completed and cancelled are terminal.
var transitions = map[string][]string{
	StatusOpen:       {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

type Event struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	EventName       string    `db:"event_name"`
	EventType       string    `db:"event_type"`
	EventDate       time.Time `db:"event_date"`
	GuestCount      int       `db:"guest_count"`
	Budget          *float64  `db:"budget"`
	Location        string    `db:"location"`
	Requirements    *string   `db:"requirements"`
	Catering        bool      `db:"catering"`
	Photography     bool      `db:"photography"`
	HotelDecoration bool      `db:"hotel_decoration"`
	Fireworks       bool      `db:"fireworks"`
	Status          string    `db:"status"`
	model.Metadata
}
