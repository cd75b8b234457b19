package dto

import (
	"strings"
	"venuely/internal/domains/menu/model"
	gDto "venuely/shared/dto"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateMenuBundleRequest struct {
	HotelID              string   `json:"hotel_id"               validate:"required,uuid"`
	Name                 string   `json:"name"                   validate:"required,notblank,max=100"`
	ChickenDish          string   `json:"chicken_dish"           validate:"required,notblank,max=100"`
	RiceDish             string   `json:"rice_dish"              validate:"required,notblank,max=100"`
	AdditionalMainDishes []string `json:"additional_main_dishes" validate:"omitempty,max=20,dive,notblank,max=100"`
	IncludeDrinks        bool     `json:"include_drinks"`
	IncludeRaita         bool     `json:"include_raita"`
	IncludeSalad         bool     `json:"include_salad"`
	IncludeCreamSalad    bool     `json:"include_cream_salad"`
	IncludeSweetDish     bool     `json:"include_sweet_dish"`
	SweetDishType        string   `json:"sweet_dish_type"        validate:"omitempty,max=100"`
	IncludeTea           bool     `json:"include_tea"`
	IncludeTableService  bool     `json:"include_table_service"`
	CustomOptionalItems  []string `json:"custom_optional_items"  validate:"omitempty,max=20,dive,notblank,max=100"`
	FinalPrice           float64  `json:"final_price"            validate:"min=0"`
}

func (c *CreateMenuBundleRequest) ToModel(user string) model.MenuBundle {
	now := timezone.Now()

	var sweetDish *string
	if trimmed := strings.TrimSpace(c.SweetDishType); c.IncludeSweetDish && trimmed != "" {
		sweetDish = &trimmed
	}

	return model.MenuBundle{
		ID:                   uuid.NewString(),
		HotelID:              c.HotelID,
		Name:                 strings.TrimSpace(c.Name),
		ChickenDish:          strings.TrimSpace(c.ChickenDish),
		RiceDish:             strings.TrimSpace(c.RiceDish),
		AdditionalMainDishes: pq.StringArray(c.AdditionalMainDishes),
		IncludeDrinks:        c.IncludeDrinks,
		IncludeRaita:         c.IncludeRaita,
		IncludeSalad:         c.IncludeSalad,
		IncludeCreamSalad:    c.IncludeCreamSalad,
		IncludeSweetDish:     c.IncludeSweetDish,
		SweetDishType:        sweetDish,
		IncludeTea:           c.IncludeTea,
		IncludeTableService:  c.IncludeTableService,
		CustomOptionalItems:  pq.StringArray(c.CustomOptionalItems),
		FinalPrice:           c.FinalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuBundleRequest struct {
	Name                 string          `db:"name"                   json:"name,omitempty"                   validate:"omitempty,notblank,max=100"`
	ChickenDish          string          `db:"chicken_dish"           json:"chicken_dish,omitempty"           validate:"omitempty,notblank,max=100"`
	RiceDish             string          `db:"rice_dish"              json:"rice_dish,omitempty"              validate:"omitempty,notblank,max=100"`
	AdditionalMainDishes *pq.StringArray `db:"additional_main_dishes" json:"additional_main_dishes,omitempty" swaggertype:"array,string"`
	IncludeDrinks        *bool           `db:"include_drinks"         json:"include_drinks,omitempty"`
	IncludeRaita         *bool           `db:"include_raita"          json:"include_raita,omitempty"`
	IncludeSalad         *bool           `db:"include_salad"          json:"include_salad,omitempty"`
	IncludeCreamSalad    *bool           `db:"include_cream_salad"    json:"include_cream_salad,omitempty"`
	IncludeSweetDish     *bool           `db:"include_sweet_dish"     json:"include_sweet_dish,omitempty"`
	SweetDishType        string          `db:"sweet_dish_type"        json:"sweet_dish_type,omitempty"        validate:"omitempty,max=100"`
	IncludeTea           *bool           `db:"include_tea"            json:"include_tea,omitempty"`
	IncludeTableService  *bool           `db:"include_table_service"  json:"include_table_service,omitempty"`
	CustomOptionalItems  *pq.StringArray `db:"custom_optional_items"  json:"custom_optional_items,omitempty"  swaggertype:"array,string"`
	FinalPrice           *float64        `db:"final_price"            json:"final_price,omitempty"            validate:"omitempty,min=0"`
}

type MenuBundleResponse struct {
	ID                   string   `json:"id"`
	HotelID              string   `json:"hotel_id"`
	Name                 string   `json:"name"`
	ChickenDish          string   `json:"chicken_dish"`
	RiceDish             string   `json:"rice_dish"`
	AdditionalMainDishes []string `json:"additional_main_dishes"`
	IncludeDrinks        bool     `json:"include_drinks"`
	IncludeRaita         bool     `json:"include_raita"`
	IncludeSalad         bool     `json:"include_salad"`
	IncludeCreamSalad    bool     `json:"include_cream_salad"`
	IncludeSweetDish     bool     `json:"include_sweet_dish"`
	SweetDishType        *string  `json:"sweet_dish_type,omitempty"`
	IncludeTea           bool     `json:"include_tea"`
	IncludeTableService  bool     `json:"include_table_service"`
	CustomOptionalItems  []string `json:"custom_optional_items"`
	FinalPrice           float64  `json:"final_price"`
	gDto.Metadata
}

func (r *MenuBundleResponse) FromModel(model model.MenuBundle) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.ChickenDish = model.ChickenDish
	r.RiceDish = model.RiceDish
	r.AdditionalMainDishes = nonNil(model.AdditionalMainDishes)
	r.IncludeDrinks = model.IncludeDrinks
	r.IncludeRaita = model.IncludeRaita
	r.IncludeSalad = model.IncludeSalad
	r.IncludeCreamSalad = model.IncludeCreamSalad
	r.IncludeSweetDish = model.IncludeSweetDish
	r.SweetDishType = model.SweetDishType
	r.IncludeTea = model.IncludeTea
	r.IncludeTableService = model.IncludeTableService
	r.CustomOptionalItems = nonNil(model.CustomOptionalItems)
	r.FinalPrice = model.FinalPrice
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.MenuBundle) []MenuBundleResponse {
	res := make([]MenuBundleResponse, len(models))
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
