package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"roomapi/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("failed to decode request body"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "failed to decode request body"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestUnprocessable(t *testing.T) {
	t.Run("with field errors", func(t *testing.T) {
		fields := failure.FieldErrors{}
		fields.Add("name", "name is required")

		result := failure.Unprocessable("invalid", fields)

		f, ok := result.(*failure.Failure)
		if !ok {
			t.Fatalf("expected result to be *failure.Failure, got %T", result)
		}

		if f.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected code to be %d, got %d", http.StatusUnprocessableEntity, f.Code)
		}

		if got := f.Fields["name"]; len(got) != 1 || got[0] != "name is required" {
			t.Errorf("unexpected field errors: %v", f.Fields)
		}
	})

	t.Run("without field errors", func(t *testing.T) {
		if result := failure.Unprocessable("invalid", failure.FieldErrors{}); result != nil {
			t.Errorf("expected nil, got %v", result)
		}
	})
}

func TestFieldErrors_Merge(t *testing.T) {
	fields := failure.FieldErrors{}
	fields.Add("name", "name must be a string")

	other := failure.FieldErrors{}
	other.Add("name", "name is required")
	other.Add("is_booked", "is_booked is required")

	fields.Merge(other)

	if len(fields["name"]) != 2 {
		t.Errorf("expected 2 messages for name, got %v", fields["name"])
	}

	if !fields.Has("is_booked") {
		t.Error("expected is_booked to be present after merge")
	}

	if fields.Has("capacity") {
		t.Error("expected capacity to be absent")
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
	}
}

func TestInternalError(t *testing.T) {
	if result := failure.InternalError(nil); result != nil {
		t.Errorf("expected nil, got %v", result)
	}

	result := failure.InternalError(errors.New("panic: boom"))
	if failure.GetCode(result) != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("room not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}

	if f.Message != "room not found" {
		t.Errorf("expected message to be 'room not found', got %s", f.Message)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.NotFound("room not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetFields(t *testing.T) {
	fields := failure.FieldErrors{}
	fields.Add("is_booked", "is_booked is required")

	wrapped := fmt.Errorf("create room: %w", failure.Unprocessable("invalid", fields))

	if got := failure.GetFields(wrapped); !got.Has("is_booked") {
		t.Errorf("expected is_booked in field errors, got %v", got)
	}

	if got := failure.GetFields(errors.New("plain")); got != nil {
		t.Errorf("expected nil field errors, got %v", got)
	}

	if !failure.IsFailure(wrapped) {
		t.Error("expected wrapped failure to be detected")
	}
}
