package repository

import (
	"errors"

	"venuely/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err carries a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasPqCode(err, constant.PqErrorCodeUniqueViolation)
}

// IsForeignKeyViolation reports whether err carries a Postgres foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasPqCode(err, constant.PqErrorCodeFkViolation)
}

func hasPqCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return false
}
