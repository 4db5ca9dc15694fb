package otel_test

import (
	"context"
	"errors"
	"testing"

	"roomapi/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "room.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"room.name":      "Room1",
		"room.is_booked": false,
		"room.id":        7,
	})
	scope.AddEvent("Room created successfully")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("insert failed"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, "room.Create", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Attributes(), 3)
	assert.Len(t, spans[0].Events(), 2) // AddEvent plus the recorded error
}
