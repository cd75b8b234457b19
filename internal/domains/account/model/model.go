package model

import (
	"time"

	"venuely/shared/model"
)

const (
	TableName  = "users"
	EntityName = "account"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldIsVerified = "is_verified"
	FieldLastLogin  = "last_login"
	FieldActive     = "active"
)

// Account is the credential record. Only ID and Email leave the service layer.
type Account struct {
	ID         string     `db:"id"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	IsVerified bool       `db:"is_verified"`
	LastLogin  *time.Time `db:"last_login"`
	Active     bool       `db:"active"`
	model.Metadata
}
