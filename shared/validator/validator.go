package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"roomapi/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// report fields by the name clients send them with
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})
}

// Decode reads a JSON document from r into data. An empty body decodes to the zero value so
// that missing fields surface as validation errors rather than as a malformed request.
func Decode[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
}

// Fields validates data against its `validate` tags and collects every failing field.
// https://github.com/go-playground/validator
func Fields[T any](data *T) failure.FieldErrors {
	return collect(validate.Struct(data), "")
}

// VarFields validates a single value against tag and reports failures under field.
func VarFields(field string, value any, tag string) failure.FieldErrors {
	return collect(validate.Var(value, tag), field)
}

func collect(err error, field string) failure.FieldErrors {
	fields := failure.FieldErrors{}

	if err == nil {
		return fields
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		fields.Add(field, err.Error())

		return fields
	}

	for _, valErr := range valErrors {
		name := valErr.Field()
		if name == "" {
			name = field
		}

		fields.Add(name, message(valErr, name))
	}

	return fields
}
