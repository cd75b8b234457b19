package dto

import (
	"strings"
	"venuely/internal/domains/hall/model"
	gDto "venuely/shared/dto"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateHallRequest struct {
	HotelID       string   `json:"hotel_id"        validate:"required,uuid"`
	Name          string   `json:"name"            validate:"required,notblank,max=100"`
	Capacity      int      `json:"capacity"        validate:"required,min=1"`
	PricePerEvent *float64 `json:"price_per_event" validate:"omitempty,min=0"`
	Description   string   `json:"description"     validate:"omitempty,max=2000"`
	Images        []string `json:"images"          validate:"omitempty,max=20,dive,url"`
}

func (c *CreateHallRequest) ToModel(user string) model.Hall {
	now := timezone.Now()

	var description *string
	if trimmed := strings.TrimSpace(c.Description); trimmed != "" {
		description = &trimmed
	}

	return model.Hall{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		Name:          strings.TrimSpace(c.Name),
		Capacity:      c.Capacity,
		PricePerEvent: c.PricePerEvent,
		Description:   description,
		Images:        pq.StringArray(c.Images),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHallRequest struct {
	Name          string          `db:"name"            json:"name,omitempty"            validate:"omitempty,notblank,max=100"`
	Capacity      int             `db:"capacity"        json:"capacity,omitempty"        validate:"omitempty,min=1"`
	PricePerEvent *float64        `db:"price_per_event" json:"price_per_event,omitempty" validate:"omitempty,min=0"`
	Description   string          `db:"description"     json:"description,omitempty"     validate:"omitempty,max=2000"`
	Images        *pq.StringArray `db:"images"          json:"images,omitempty"          swaggertype:"array,string"`
}

type HallResponse struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	Capacity      int      `json:"capacity"`
	PricePerEvent *float64 `json:"price_per_event,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Images        []string `json:"images"`
	gDto.Metadata
}

func (r *HallResponse) FromModel(model model.Hall) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.PricePerEvent = model.PricePerEvent
	r.Description = model.Description
	r.Images = nonNil(model.Images)
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Hall) []HallResponse {
	res := make([]HallResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
