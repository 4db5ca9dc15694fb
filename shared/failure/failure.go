package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Fields is only set for validation failures and lists the messages per offending input field.
type Failure struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Fields  FieldErrors `json:"errors,omitempty"`
}

// FieldErrors maps an input field name to its validation messages.
type FieldErrors map[string][]string

// Add appends message to the messages of field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Has reports whether field already failed.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]

	return ok
}

// Merge appends every message of other, field by field.
func (f FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		f[field] = append(f[field], messages...)
	}
}

// Error returns the error message.
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

// Unprocessable returns a new Failure for input that parsed but did not pass validation.
// It returns nil when fields is empty.
func Unprocessable(message string, fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}

	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Fields:  fields,
	}
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
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
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

// GetFields returns the field errors carried by err, if any.
func GetFields(err error) FieldErrors {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsFailure reports whether err carries an HTTP-coded Failure.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
