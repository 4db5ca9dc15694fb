package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"roomapi/shared/failure"
	"roomapi/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]any{"rooms": []any{}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rooms":[]}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	fields := failure.FieldErrors{}
	fields.Add("name", "name is required")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      failure.NotFound("room not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"room not found"}`,
		},
		{
			name:     "validation",
			err:      failure.Unprocessable("The given data was invalid.", fields),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"message":"The given data was invalid.","errors":{"name":["name is required"]}}`,
		},
		{
			name:     "bad request",
			err:      failure.BadRequest(errors.New("failed to decode request body")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"failed to decode request body"}`,
		},
		{
			name:     "plain error is masked",
			err:      fmt.Errorf("failed to get rooms: %w", errors.New("pq: connection refused")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name:     "internal failure is masked",
			err:      failure.InternalError(errors.New("runtime error: nil map")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}
