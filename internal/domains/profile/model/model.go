package model

import "venuely/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldAvatarURL = "avatar_url"
)

// Profile shares its primary key with the owning account.
type Profile struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	FullName  string  `db:"full_name"`
	Phone     *string `db:"phone"`
	Address   *string `db:"address"`
	AvatarURL *string `db:"avatar_url"`
	model.Metadata
}
