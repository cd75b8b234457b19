package model

import (
	"venuely/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "menu_bundles"
	EntityName = "menu bundle"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldName       = "name"
	FieldFinalPrice = "final_price"
)

// MenuBundle is a per-person catering package. ChickenDish and RiceDish are the two fixed mains.
type MenuBundle struct {
	ID                   string         `db:"id"`
	HotelID              string         `db:"hotel_id"`
	Name                 string         `db:"name"`
	ChickenDish          string         `db:"chicken_dish"`
	RiceDish             string         `db:"rice_dish"`
	AdditionalMainDishes pq.StringArray `db:"additional_main_dishes"`
	IncludeDrinks        bool           `db:"include_drinks"`
	IncludeRaita         bool           `db:"include_raita"`
	IncludeSalad         bool           `db:"include_salad"`
	IncludeCreamSalad    bool           `db:"include_cream_salad"`
	IncludeSweetDish     bool           `db:"include_sweet_dish"`
	SweetDishType        *string        `db:"sweet_dish_type"`
	IncludeTea           bool           `db:"include_tea"`
	IncludeTableService  bool           `db:"include_table_service"`
	CustomOptionalItems  pq.StringArray `db:"custom_optional_items"`
	FinalPrice           float64        `db:"final_price"`
	model.Metadata
}
