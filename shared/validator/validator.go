package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"venuely/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// newValidate reports fields by their json name and adds "notblank", which rejects
// whitespace-only strings.
func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}

	return v
}

func notBlank(fl val.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)

	return !ok || strings.TrimSpace(str) != ""
}

// Validate decodes a JSON body into data and validates it. Every failure is a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is required")
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateID checks a path or query identifier and names it in the 400.
func ValidateID(name, id string) error {
	if id == "" {
		return failure.BadRequestFromString(name + " is required")
	}

	if err := validate.Var(id, "uuid"); err != nil {
		return failure.BadRequestFromString(name + " must be a valid UUID")
	}

	return nil
}
