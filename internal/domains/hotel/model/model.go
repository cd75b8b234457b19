package model

import (
	"venuely/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID              = "id"
	FieldOrganizerID     = "organizer_id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldAddress         = "address"
	FieldCity            = "city"
	FieldImageURL        = "image_url"
	FieldImageURLs       = "image_urls"
	FieldVideoURLs       = "video_urls"
	FieldMapLocation     = "map_location"
	FieldParkingCapacity = "parking_capacity"
	FieldParkingDetails  = "parking_details"
	FieldParkingImages   = "parking_images"
)

const (
	MaxImages = 20
	MaxVideos = 3
)

type Hotel struct {
	ID              string         `db:"id"`
	OrganizerID     string         `db:"organizer_id"`
	Name            string         `db:"name"`
	Description     *string        `db:"description"`
	Address         string         `db:"address"`
	City            string         `db:"city"`
	ImageURL        *string        `db:"image_url"`
	ImageURLs       pq.StringArray `db:"image_urls"`
	VideoURLs       pq.StringArray `db:"video_urls"`
	MapLocation     *string        `db:"map_location"`
	ParkingCapacity *int           `db:"parking_capacity"`
	ParkingDetails  *string        `db:"parking_details"`
	ParkingImages   pq.StringArray `db:"parking_images"`
	model.Metadata
}

// MediaURLs returns every stored object URL of the hotel.
func (h Hotel) MediaURLs() []string {
	urls := make([]string, 0, len(h.ImageURLs)+len(h.VideoURLs)+len(h.ParkingImages)+1)

	if h.ImageURL != nil && *h.ImageURL != "" {
		urls = append(urls, *h.ImageURL)
	}

	urls = append(urls, h.ImageURLs...)
	urls = append(urls, h.VideoURLs...)
	urls = append(urls, h.ParkingImages...)

	return urls
}
