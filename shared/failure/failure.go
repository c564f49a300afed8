package failure

import (
	"errors"
	"net/http"
	"strings"
)

// FieldError pairs a field name (or "base" for record-level failures) with a message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldBase marks a failure that belongs to the record as a whole rather than a
// single attribute, e.g. a date-range conflict.
const FieldBase = "base"

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad-request Failure carrying structured field errors. The
// top-level message joins the individual messages so plain-text consumers still
// get something readable.
func Validation(fields ...FieldError) error {
	messages := make([]string, len(fields))
	for i, field := range fields {
		messages[i] = field.Message
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: strings.Join(messages, "; "),
		Fields:  fields,
	}
}

// ValidationOnField returns a bad-request Failure for a single field.
func ValidationOnField(field, msg string) error {
	return Validation(FieldError{Field: field, Message: msg})
}

// ValidationOnBase returns a bad-request Failure attached to the record itself.
func ValidationOnBase(msg string) error {
	return Validation(FieldError{Field: FieldBase, Message: msg})
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations, e.g. a delete
// blocked by referencing rows.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the structured field errors of an error interface, if any.
func GetFields(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}
