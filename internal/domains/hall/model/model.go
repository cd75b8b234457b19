package model

import (
	"venuely/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "hotel_halls"
	EntityName = "hall"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldName          = "name"
	FieldCapacity      = "capacity"
	FieldPricePerEvent = "price_per_event"
	FieldDescription   = "description"
	FieldImages        = "images"
)

type Hall struct {
	ID            string         `db:"id"`
	HotelID       string         `db:"hotel_id"`
	Name          string         `db:"name"`
	Capacity      int            `db:"capacity"`
	PricePerEvent *float64       `db:"price_per_event"`
	Description   *string        `db:"description"`
	Images        pq.StringArray `db:"images"`
	model.Metadata
}
