package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the HTTP layer reports to the caller with Code as status and Message as body.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError          = New(http.StatusForbidden, "You don't have the required permissions")
	ResourceRestrictedError = New(http.StatusForbidden, "You don't have permission to access this resource")
	AlreadyInvited          = New(http.StatusConflict, "already invited")
	AlreadyFavorited        = New(http.StatusConflict, "already in favorites")
	NoVenueListed           = New(http.StatusUnprocessableEntity, "please add your hotel first before sending invites")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest turns err into a 400 carrying its message. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

func Unimplemented(msg string) error {
	return New(http.StatusNotImplemented, msg)
}

// BadGateway reports a failure of an upstream service.
func BadGateway(msg string) error {
	return New(http.StatusBadGateway, msg)
}

// GetCode returns the status of the first Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsInternal reports whether err should be hidden from the caller.
func IsInternal(err error) bool {
	switch code := GetCode(err); code {
	case http.StatusNotImplemented, http.StatusBadGateway:
		return false
	default:
		return code >= http.StatusInternalServerError
	}
}
