package dto

import (
	"strings"
	"venuely/internal/domains/event/model"
	"venuely/shared"
	gDto "venuely/shared/dto"
	"venuely/shared/failure"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	EventName       string   `json:"event_name"       validate:"required,notblank,max=150"`
	EventType       string   `json:"event_type"       validate:"required,notblank,max=50"`
	EventDate       string   `json:"event_date"       validate:"required,datetime=2006-01-02"`
	GuestCount      int      `json:"guest_count"      validate:"required,min=1"`
	Budget          *float64 `json:"budget"           validate:"omitempty,min=0"`
	Location        string   `json:"location"         validate:"required,notblank,max=255"`
	Requirements    string   `json:"requirements"     validate:"omitempty,max=2000"`
	Catering        bool     `json:"catering"`
	Photography     bool     `json:"photography"`
	HotelDecoration bool     `json:"hotel_decoration"`
	Fireworks       bool     `json:"fireworks"`
}

func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	date, err := timezone.ParseDate(c.EventDate)
	if err != nil {
		return model.Event{}, failure.BadRequestFromString("event_date must be formatted as YYYY-MM-DD")
	}

	var requirements *string
	if trimmed := strings.TrimSpace(c.Requirements); trimmed != "" {
		requirements = &trimmed
	}

	now := timezone.Now()

	return model.Event{
		ID:              uuid.NewString(),
		UserID:          user,
		EventName:       strings.TrimSpace(c.EventName),
		EventType:       strings.TrimSpace(c.EventType),
		EventDate:       date,
		GuestCount:      c.GuestCount,
		Budget:          c.Budget,
		Location:        strings.TrimSpace(c.Location),
		Requirements:    requirements,
		Catering:        c.Catering,
		Photography:     c.Photography,
		HotelDecoration: c.HotelDecoration,
		Fireworks:       c.Fireworks,
		Status:          model.StatusOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateEventRequest carries a partial update. Pointer fields allow clearing a flag to false.
type UpdateEventRequest struct {
	EventName       string   `db:"event_name"       json:"event_name,omitempty"       validate:"omitempty,notblank,max=150"`
	EventType       string   `db:"event_type"       json:"event_type,omitempty"       validate:"omitempty,notblank,max=50"`
	EventDate       string   `db:"event_date"       json:"event_date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	GuestCount      int      `db:"guest_count"      json:"guest_count,omitempty"      validate:"omitempty,min=1"`
	Budget          *float64 `db:"budget"           json:"budget,omitempty"           validate:"omitempty,min=0"`
	Location        string   `db:"location"         json:"location,omitempty"         validate:"omitempty,notblank,max=255"`
	Requirements    string   `db:"requirements"     json:"requirements,omitempty"     validate:"omitempty,max=2000"`
	Catering        *bool    `db:"catering"         json:"catering,omitempty"`
	Photography     *bool    `db:"photography"      json:"photography,omitempty"`
	HotelDecoration *bool    `db:"hotel_decoration" json:"hotel_decoration,omitempty"`
	Fireworks       *bool    `db:"fireworks"        json:"fireworks,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress completed cancelled"`
}

type UpdateStatusFields struct {
	Status string `db:"status"`
}

type EventResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	EventName       string   `json:"event_name"`
	EventType       string   `json:"event_type"`
	EventDate       string   `json:"event_date"`
	GuestCount      int      `json:"guest_count"`
	Budget          *float64 `json:"budget,omitempty"`
	Location        string   `json:"location"`
	Requirements    *string  `json:"requirements,omitempty"`
	Catering        bool     `json:"catering"`
	Photography     bool     `json:"photography"`
	HotelDecoration bool     `json:"hotel_decoration"`
	Fireworks       bool     `json:"fireworks"`
	Status          string   `json:"status"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.EventName = model.EventName
	r.EventType = model.EventType
	r.EventDate = model.EventDate.Format(timezone.DateLayout)
	r.GuestCount = model.GuestCount
	r.Budget = model.Budget
	r.Location = model.Location
	r.Requirements = model.Requirements
	r.Catering = model.Catering
	r.Photography = model.Photography
	r.HotelDecoration = model.HotelDecoration
	r.Fireworks = model.Fireworks
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
