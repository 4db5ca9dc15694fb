package response

import (
	"encoding/json"
	"net/http"
	"roomapi/shared/constant"
	"roomapi/shared/failure"
	"roomapi/shared/logger"

	"github.com/rs/zerolog/log"
)

// Error is the body of every non-validation failure.
type Error struct {
	Error string `json:"error"`
}

// Message is a bare status message.
type Message struct {
	Message string `json:"message"`
}

// Validation lists the messages of every rejected input field.
type Validation struct {
	Message string              `json:"message"`
	Errors  failure.FieldErrors `json:"errors"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

// WithJSON sends payload as the response body.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, payload)
}

// WithError maps err to its HTTP status. Validation failures carry their field errors.
// Server side failures, and errors that are not a failure.Failure at all, are logged
// and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	switch {
	case code >= http.StatusInternalServerError || !failure.IsFailure(err):
		logger.ErrorWithStack(err)
		write(writer, code, Error{Error: constant.ResponseErrorInternal})
	case len(failure.GetFields(err)) > 0:
		write(writer, code, Validation{Message: err.Error(), Errors: failure.GetFields(err)})
	default:
		write(writer, code, Error{Error: err.Error()})
	}
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		log.Warn().Err(err).Int("status", code).Msg("failed to write response body")
	}
}
