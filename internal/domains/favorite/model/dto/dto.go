package dto

import (
	"time"
	"venuely/internal/domains/favorite/model"
	gDto "venuely/shared/dto"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type AddFavoriteRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
}

func (a *AddFavoriteRequest) ToModel(organizer string) model.Favorite {
	now := timezone.Now()

	return model.Favorite{
		ID:          uuid.NewString(),
		OrganizerID: organizer,
		EventID:     a.EventID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  organizer,
			ModifiedBy: organizer,
		},
	}
}

type FavoriteResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	gDto.Metadata
}

func (r *FavoriteResponse) FromModel(model model.Favorite) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Metadata.FromModel(model.Metadata)
}

type FavoriteEvent struct {
	ID         string    `json:"id"`
	EventName  string    `json:"event_name"`
	EventType  string    `json:"event_type"`
	EventDate  time.Time `json:"event_date"`
	GuestCount int       `json:"guest_count"`
	Budget     *float64  `json:"budget,omitempty"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	UserID     string    `json:"user_id"`
}

type FavoriteEventResponse struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Event     FavoriteEvent `json:"event"`
}

func FromModels(models []model.FavoriteEvent) []FavoriteEventResponse {
	res := make([]FavoriteEventResponse, len(models))

	for i, mod := range models {
		res[i] = FavoriteEventResponse{
			ID:        mod.ID,
			CreatedAt: mod.CreatedAt,
			Event: FavoriteEvent{
				ID:         mod.EventID,
				EventName:  mod.EventName,
				EventType:  mod.EventType,
				EventDate:  mod.EventDate,
				GuestCount: mod.GuestCount,
				Budget:     mod.Budget,
				Location:   mod.Location,
				Status:     mod.EventStatus,
				UserID:     mod.EventOwner,
			},
		}
	}

	return res
}
