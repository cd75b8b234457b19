package model

import (
	"venuely/shared/model"
)

const (
	TableName  = "hotel_reviews"
	EntityName = "review"

	FieldID      = "id"
	FieldHotelID = "hotel_id"
	FieldUserID  = "user_id"
	FieldRating  = "rating"
	FieldComment = "comment"

	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID      string  `db:"id"`
	HotelID string  `db:"hotel_id"`
	UserID  string  `db:"user_id"`
	Rating  int     `db:"rating"`
	Comment *string `db:"comment"`
	model.Metadata
}

// ReviewWithAuthor carries the reviewer's display name.
type ReviewWithAuthor struct {
	Review
	AuthorName string `column:"full_name" db:"author_name" table:"profiles"`
}

func (ReviewWithAuthor) GetJoinQuery() string {
	return "JOIN profiles ON profiles.id = hotel_reviews.user_id"
}
