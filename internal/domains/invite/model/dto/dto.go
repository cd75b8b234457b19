package dto

import (
	"strings"
	"time"
	"venuely/internal/domains/invite/model"
	gDto "venuely/shared/dto"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type SendInviteRequest struct {
	EventID string `json:"event_id"           validate:"required,uuid"`
	HotelID string `json:"hotel_id,omitempty" validate:"omitempty,uuid"`
	UserID  string `json:"user_id,omitempty"  validate:"omitempty,uuid"`
	Message string `json:"message,omitempty"  validate:"omitempty,max=2000"`
}

func (s *SendInviteRequest) ToModel(organizer, hotelID, recipient, message string) model.Invite {
	now := timezone.Now()

	return model.Invite{
		ID:          uuid.NewString(),
		EventID:     s.EventID,
		HotelID:     hotelID,
		OrganizerID: organizer,
		UserID:      recipient,
		Message:     message,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  organizer,
			ModifiedBy: organizer,
		},
	}
}

// DefaultMessage is used when the organizer sends no message of their own.
func DefaultMessage(hotelName string) string {
	return "We'd love to host your event at " + strings.TrimSpace(hotelName) + "!"
}

type ActRequest struct {
	Action string `json:"action" validate:"required,oneof=accepted rejected"`
}

type StatusFields struct {
	Status string `db:"status"`
}

type ActResponse struct {
	InviteID      string  `json:"invite_id"`
	Status        string  `json:"status"`
	ChatID        *string `json:"chat_id,omitempty"`
	ChatAvailable bool    `json:"chat_available"`
}

type InviteResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	HotelID     string `json:"hotel_id"`
	OrganizerID string `json:"organizer_id"`
	UserID      string `json:"user_id"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *InviteResponse) FromModel(model model.Invite) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.HotelID = model.HotelID
	r.OrganizerID = model.OrganizerID
	r.UserID = model.UserID
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type InviteHotel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
	City     string  `json:"city"`
}

type InviteEvent struct {
	ID         string    `json:"id"`
	EventName  string    `json:"event_name"`
	EventType  string    `json:"event_type,omitempty"`
	EventDate  time.Time `json:"event_date"`
	GuestCount int       `json:"guest_count,omitempty"`
	Location   string    `json:"location,omitempty"`
}

type RecipientProfile struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type UserInviteResponse struct {
	ID        string      `json:"id"`
	Message   string      `json:"message"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Hotel     InviteHotel `json:"hotel"`
	Event     InviteEvent `json:"event"`
}

func FromUserInvites(models []model.UserInvite) []UserInviteResponse {
	res := make([]UserInviteResponse, len(models))

	for i, mod := range models {
		res[i] = UserInviteResponse{
			ID:        mod.ID,
			Message:   mod.Message,
			Status:    mod.Status,
			CreatedAt: mod.CreatedAt,
			Hotel: InviteHotel{
				ID:       mod.HotelID,
				Name:     mod.HotelName,
				ImageURL: mod.HotelImageURL,
				City:     mod.HotelCity,
			},
			Event: InviteEvent{
				ID:        mod.EventID,
				EventName: mod.EventName,
				EventDate: mod.EventDate,
			},
		}
	}

	return res
}

type OrganizerInviteResponse struct {
	ID        string            `json:"id"`
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	HotelID   string            `json:"hotel_id"`
	HotelName string            `json:"hotel_name"`
	Event     InviteEvent       `json:"event"`
	Recipient *RecipientProfile `json:"recipient,omitempty"`
}

// FromOrganizerInvites attaches the recipient profile to accepted invites only.
func FromOrganizerInvites(models []model.OrganizerInvite) []OrganizerInviteResponse {
	res := make([]OrganizerInviteResponse, len(models))

	for i, mod := range models {
		res[i] = OrganizerInviteResponse{
			ID:        mod.ID,
			Message:   mod.Message,
			Status:    mod.Status,
			CreatedAt: mod.CreatedAt,
			HotelID:   mod.HotelID,
			HotelName: mod.HotelName,
			Event: InviteEvent{
				ID:         mod.EventID,
				EventName:  mod.EventName,
				EventType:  mod.EventType,
				EventDate:  mod.EventDate,
				GuestCount: mod.GuestCount,
				Location:   mod.Location,
			},
		}

		if mod.Status == model.StatusAccepted && mod.RecipientName != nil {
			res[i].Recipient = &RecipientProfile{
				FullName: *mod.RecipientName,
				Email:    deref(mod.RecipientEmail),
				Phone:    mod.RecipientPhone,
				Address:  mod.RecipientAddress,
			}
		}
	}

	return res
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
