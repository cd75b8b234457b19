package model

import "venuely/shared/model"

const (
	TableName  = "user_roles"
	EntityName = "role"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldRole   = "role"
)

type Role struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Role   string `db:"role"`
	model.Metadata
}
