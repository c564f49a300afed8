package validator

import (
	"errors"
	"stay/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gt":        "{field} must be greater than {param}",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be less than or equal to {param}",
		"min":       "{field} must be greater than or equal to {param}",
		"email":     "{field} must be a valid email address",
		"datetime":  "{field} must be a valid date in format {param}",
		"dateorder": "{field} must be after {param}",
	}
)

// fieldErrors converts validator errors into the structured field/message pairs
// carried by failure.Validation.
func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldError{{Field: failure.FieldBase, Message: err.Error()}}
	}

	fields := make([]failure.FieldError, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		errStr := messages[valErr.Tag()]
		if errStr == "" {
			fields = append(fields, failure.FieldError{Field: field, Message: valErr.Error()})

			continue
		}

		errStr = strings.ReplaceAll(errStr, "{field}", field)
		errStr = strings.ReplaceAll(errStr, "{param}", param)

		fields = append(fields, failure.FieldError{Field: field, Message: errStr})
	}

	return fields
}
