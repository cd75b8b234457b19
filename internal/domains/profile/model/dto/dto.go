package dto

import (
	"io"
	"venuely/internal/domains/profile/model"
	gDto "venuely/shared/dto"
)

type ProfileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(model model.Profile) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Address = model.Address
	r.AvatarURL = model.AvatarURL
	r.Metadata.FromModel(model.Metadata)
}

type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,notblank,max=100"`
	Phone    string `db:"phone"     json:"phone,omitempty"     validate:"omitempty,max=20"`
	Address  string `db:"address"   json:"address,omitempty"   validate:"omitempty,max=255"`
}

type UpdateAvatarRequest struct {
	AvatarURL string `db:"avatar_url"`
}

type UploadAvatarRequest struct {
	File        io.Reader
	FileName    string
	ContentType string
	Size        int64
}

type UploadAvatarResponse struct {
	URL string `json:"url"`
}
