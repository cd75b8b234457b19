package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"email":    "{field} must be a valid email address",
	"url":      "{field} must be a valid URL",
	"uuid":     "{field} must be a valid UUID",
	"datetime": "{field} must match the format {param}",
	"oneof":    "{field} must be one of {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
}

// message renders the first field error with a known template. Unknown tags fall back to
// the validator's own text.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fe := range fieldErrs {
		tmpl, ok := templates[fe.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fe.Field(), "{param}", fe.Param()).Replace(tmpl)
	}

	return fieldErrs.Error()
}
