package dto

import (
	"io"
	"strings"
	hallDto "venuely/internal/domains/hall/model/dto"
	"venuely/internal/domains/hotel/model"
	menuDto "venuely/internal/domains/menu/model/dto"
	"venuely/shared"
	gDto "venuely/shared/dto"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateHotelRequest struct {
	Name            string   `json:"name"             validate:"required,notblank,max=150"`
	Description     string   `json:"description"      validate:"omitempty,max=5000"`
	Address         string   `json:"address"          validate:"required,notblank,max=255"`
	City            string   `json:"city"             validate:"required,notblank,max=100"`
	ImageURL        string   `json:"image_url"        validate:"omitempty,url"`
	ImageURLs       []string `json:"image_urls"       validate:"omitempty,max=20,dive,url"`
	VideoURLs       []string `json:"video_urls"       validate:"omitempty,max=3,dive,url"`
	MapLocation     string   `json:"map_location"     validate:"omitempty,max=500"`
	ParkingCapacity *int     `json:"parking_capacity" validate:"omitempty,min=0"`
	ParkingDetails  string   `json:"parking_details"  validate:"omitempty,max=2000"`
	ParkingImages   []string `json:"parking_images"   validate:"omitempty,max=20,dive,url"`
}

func (c *CreateHotelRequest) ToModel(organizer string) model.Hotel {
	now := timezone.Now()

	imageURL := optional(c.ImageURL)
	if imageURL == nil && len(c.ImageURLs) > 0 {
		imageURL = &c.ImageURLs[0]
	}

	return model.Hotel{
		ID:              uuid.NewString(),
		OrganizerID:     organizer,
		Name:            strings.TrimSpace(c.Name),
		Description:     optional(c.Description),
		Address:         strings.TrimSpace(c.Address),
		City:            strings.TrimSpace(c.City),
		ImageURL:        imageURL,
		ImageURLs:       pq.StringArray(c.ImageURLs),
		VideoURLs:       pq.StringArray(c.VideoURLs),
		MapLocation:     optional(c.MapLocation),
		ParkingCapacity: c.ParkingCapacity,
		ParkingDetails:  optional(c.ParkingDetails),
		ParkingImages:   pq.StringArray(c.ParkingImages),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  organizer,
			ModifiedBy: organizer,
		},
	}
}

// UpdateHotelRequest carries a partial update. A present array replaces the stored one.
type UpdateHotelRequest struct {
	Name            string          `db:"name"             json:"name,omitempty"             validate:"omitempty,notblank,max=150"`
	Description     string          `db:"description"      json:"description,omitempty"      validate:"omitempty,max=5000"`
	Address         string          `db:"address"          json:"address,omitempty"          validate:"omitempty,notblank,max=255"`
	City            string          `db:"city"             json:"city,omitempty"             validate:"omitempty,notblank,max=100"`
	ImageURL        string          `db:"image_url"        json:"image_url,omitempty"        validate:"omitempty,url"`
	ImageURLs       *pq.StringArray `db:"image_urls"       json:"image_urls,omitempty"       swaggertype:"array,string"`
	VideoURLs       *pq.StringArray `db:"video_urls"       json:"video_urls,omitempty"       swaggertype:"array,string"`
	MapLocation     string          `db:"map_location"     json:"map_location,omitempty"     validate:"omitempty,max=500"`
	ParkingCapacity *int            `db:"parking_capacity" json:"parking_capacity,omitempty" validate:"omitempty,min=0"`
	ParkingDetails  string          `db:"parking_details"  json:"parking_details,omitempty"  validate:"omitempty,max=2000"`
	ParkingImages   *pq.StringArray `db:"parking_images"   json:"parking_images,omitempty"   swaggertype:"array,string"`
}

type HotelResponse struct {
	ID              string   `json:"id"`
	OrganizerID     string   `json:"organizer_id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	ImageURL        *string  `json:"image_url,omitempty"`
	ImageURLs       []string `json:"image_urls"`
	VideoURLs       []string `json:"video_urls"`
	MapLocation     *string  `json:"map_location,omitempty"`
	ParkingCapacity *int     `json:"parking_capacity,omitempty"`
	ParkingDetails  *string  `json:"parking_details,omitempty"`
	ParkingImages   []string `json:"parking_images"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.OrganizerID = model.OrganizerID
	r.Name = model.Name
	r.Description = model.Description
	r.Address = model.Address
	r.City = model.City
	r.ImageURL = model.ImageURL
	r.ImageURLs = nonNil(model.ImageURLs)
	r.VideoURLs = nonNil(model.VideoURLs)
	r.MapLocation = model.MapLocation
	r.ParkingCapacity = model.ParkingCapacity
	r.ParkingDetails = model.ParkingDetails
	r.ParkingImages = nonNil(model.ParkingImages)
	r.Metadata.FromModel(model.Metadata)
}

type HotelDetailResponse struct {
	HotelResponse
	Halls       []hallDto.HallResponse       `json:"halls"`
	MenuBundles []menuDto.MenuBundleResponse `json:"menu_bundles"`
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

type UploadMediaRequest struct {
	Kind        string
	File        io.Reader
	FileName    string
	ContentType string
	Size        int64
}

type UploadMediaResponse struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
