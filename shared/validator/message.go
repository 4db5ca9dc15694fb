package validator

import (
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"boolean":  "{field} must be true or false",
	}

	// string lengths read better in characters
	stringMessages = map[string]string{
		"max": "{field} must not be greater than {param} characters",
		"min": "{field} must be at least {param} characters",
	}
)

func message(valErr val.FieldError, field string) string {
	tmpl := messages[valErr.Tag()]
	if valErr.Kind() == reflect.String {
		if strTmpl, ok := stringMessages[valErr.Tag()]; ok {
			tmpl = strTmpl
		}
	}

	if tmpl == "" {
		return valErr.Error()
	}

	msg := strings.ReplaceAll(tmpl, "{field}", field)

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}
