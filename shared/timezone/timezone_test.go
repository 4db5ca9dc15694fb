package timezone_test

import (
	"roomapi/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })

	require.NoError(t, timezone.Init("Europe/Paris"))

	assert.Equal(t, "Europe/Paris", timezone.Now().Location().String())
}

func TestInit_InvalidNameFallsBackToUTC(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })

	err := timezone.Init("Mars/Olympus_Mons")

	assert.Error(t, err)
	assert.Equal(t, time.UTC, timezone.Now().Location())
}

func TestNow_TruncatedToSeconds(t *testing.T) {
	assert.Zero(t, timezone.Now().Nanosecond())
}

func TestFormat(t *testing.T) {
	require.NoError(t, timezone.Init("UTC"))

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*60*60))

	assert.Equal(t, "2024-01-01T05:00:00Z", timezone.Format(testTime, time.RFC3339))
}
