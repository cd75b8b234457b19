package dto

import (
	"math"
	"strings"
	"time"
	"venuely/internal/domains/review/model"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	HotelID string `json:"hotel_id" validate:"required,uuid"`
	Rating  int    `json:"rating"   validate:"required,min=1,max=5"`
	Comment string `json:"comment"  validate:"omitempty,max=2000"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	now := timezone.Now()

	var comment *string
	if trimmed := strings.TrimSpace(c.Comment); trimmed != "" {
		comment = &trimmed
	}

	return model.Review{
		ID:      uuid.NewString(),
		HotelID: c.HotelID,
		UserID:  user,
		Rating:  c.Rating,
		Comment: comment,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.UserID = model.UserID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.CreatedAt = model.CreatedAt
}

type HotelReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	Count         int              `json:"count"`
	AverageRating float64          `json:"average_rating"`
}

// FromModels fills the list and the average rounded to one decimal.
func (r *HotelReviewsResponse) FromModels(models []model.ReviewWithAuthor) {
	r.Reviews = make([]ReviewResponse, len(models))
	r.Count = len(models)

	total := 0

	for i, mod := range models {
		r.Reviews[i].FromModel(mod.Review)
		r.Reviews[i].AuthorName = mod.AuthorName

		total += mod.Rating
	}

	if r.Count > 0 {
		r.AverageRating = math.Round(float64(total)/float64(r.Count)*10) / 10
	}
}
