package evidence_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestNewEvidence(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()
	lat, lng := ptr(55.7558), ptr(37.6173)

	t.Run("should create valid photo evidence", func(t *testing.T) {
		ev, err := evidence.NewEvidence(validID, validOrderID, "photo", "https://cdn.example.com/p.jpg",
			lat, lng, "2025-06-01T10:15:00Z", map[string]any{"device": "pixel-9"})

		require.NoError(t, err)
		require.NoError(t, ev.Validate())
		assert.True(t, ev.ID().IsEqual(validID))
		assert.True(t, ev.OrderID().IsEqual(validOrderID))
		assert.Equal(t, evidence.KindPhoto, ev.Kind())
		assert.Equal(t, "https://cdn.example.com/p.jpg", ev.URL())
		assert.InDelta(t, 55.7558, ev.Location().Latitude(), 0.000001)
		assert.Equal(t, time.Date(2025, 6, 1, 10, 15, 0, 0, time.UTC), ev.CapturedAt())
		assert.Equal(t, "pixel-9", ev.Meta()["device"])
	})

	t.Run("should create video evidence without metadata", func(t *testing.T) {
		ev, err := evidence.NewEvidence(validID, validOrderID, "video", "https://cdn.example.com/v.mp4",
			lat, lng, "2025-06-01T10:15:00+03:00", nil)

		require.NoError(t, err)
		assert.Equal(t, evidence.KindVideo, ev.Kind())
		assert.Nil(t, ev.Meta())
		assert.Equal(t, time.Date(2025, 6, 1, 7, 15, 0, 0, time.UTC), ev.CapturedAt())
	})

	t.Run("should require GPS coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng *float64
		}{
			{"both absent", nil, nil},
			{"latitude absent", nil, lng},
			{"longitude absent", lat, nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ev, err := evidence.NewEvidence(validID, validOrderID, "photo", "https://cdn.example.com/p.jpg",
					tc.lat, tc.lng, "2025-06-01T10:15:00Z", nil)

				require.ErrorIs(t, err, evidence.ErrGPSCoordinatesRequired)
				assert.Nil(t, ev)
			})
		}
	})

	t.Run("should require timestamp", func(t *testing.T) {
		ev, err := evidence.NewEvidence(validID, validOrderID, "photo", "https://cdn.example.com/p.jpg",
			lat, lng, "", nil)

		require.ErrorIs(t, err, evidence.ErrTimestampRequired)
		assert.Nil(t, ev)
	})

	t.Run("should reject unparseable timestamp with distinct reason", func(t *testing.T) {
		for _, ts := range []string{"yesterday", "2025-13-45T99:00:00Z", "01/06/2025"} {
			ev, err := evidence.NewEvidence(validID, validOrderID, "photo", "https://cdn.example.com/p.jpg",
				lat, lng, ts, nil)

			require.ErrorIs(t, err, evidence.ErrTimestampInvalid, ts)
			assert.Nil(t, ev)
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		for _, kind := range []string{"", "audio", "Photo", "PHOTO"} {
			ev, err := evidence.NewEvidence(validID, validOrderID, kind, "https://cdn.example.com/p.jpg",
				lat, lng, "2025-06-01T10:15:00Z", nil)

			require.ErrorIs(t, err, evidence.ErrKindInvalid, kind)
			assert.Nil(t, ev)
		}
	})

	t.Run("should require url", func(t *testing.T) {
		ev, err := evidence.NewEvidence(validID, validOrderID, "photo", "",
			lat, lng, "2025-06-01T10:15:00Z", nil)

		require.ErrorIs(t, err, evidence.ErrURLRequired)
		assert.Nil(t, ev)
	})

	t.Run("should short circuit in documented order", func(t *testing.T) {
		// Everything is wrong at once; only the first check's reason surfaces.
		ev, err := evidence.NewEvidence(validID, validOrderID, "audio", "", nil, nil, "", nil)

		require.ErrorIs(t, err, evidence.ErrGPSCoordinatesRequired)
		assert.NotErrorIs(t, err, evidence.ErrTimestampRequired)
		assert.Nil(t, ev)

		// With coordinates present the missing timestamp wins over kind and url.
		ev, err = evidence.NewEvidence(validID, validOrderID, "audio", "", lat, lng, "", nil)

		require.ErrorIs(t, err, evidence.ErrTimestampRequired)
		assert.Nil(t, ev)

		// With a valid timestamp the kind check wins over url.
		ev, err = evidence.NewEvidence(validID, validOrderID, "audio", "", lat, lng, "2025-06-01T10:15:00Z", nil)

		require.ErrorIs(t, err, evidence.ErrKindInvalid)
		assert.Nil(t, ev)
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		ev, err := evidence.NewEvidence(validID, validOrderID, "photo", "https://cdn.example.com/p.jpg",
			ptr(91), lng, "2025-06-01T10:15:00Z", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, ev)
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		ev, err := evidence.NewEvidence(invalidID, validOrderID, "photo", "https://cdn.example.com/p.jpg",
			lat, lng, "2025-06-01T10:15:00Z", nil)

		require.Error(t, err)
		assert.Nil(t, ev)

		ev, err = evidence.NewEvidence(validID, invalidID, "photo", "https://cdn.example.com/p.jpg",
			lat, lng, "2025-06-01T10:15:00Z", nil)

		require.Error(t, err)
		assert.Nil(t, ev)
	})
}

func TestRestoreEvidence(t *testing.T) {
	location, _ := kernel.NewLocation(55.7558, 37.6173)
	capturedAt := time.Date(2025, 6, 1, 10, 15, 0, 0, time.UTC)

	t.Run("should restore stored record", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		ev, err := evidence.RestoreEvidence(id, orderID, evidence.KindPhoto,
			"https://cdn.example.com/p.jpg", location, capturedAt, map[string]any{"note": "after repair"})

		require.NoError(t, err)
		require.NoError(t, ev.Validate())
		assert.True(t, ev.ID().IsEqual(id))
		assert.Equal(t, capturedAt, ev.CapturedAt())
	})

	t.Run("should reject invalid location", func(t *testing.T) {
		var invalid kernel.Location

		ev, err := evidence.RestoreEvidence(kernel.NewUUID(), kernel.NewUUID(), evidence.KindPhoto,
			"https://cdn.example.com/p.jpg", invalid, capturedAt, nil)

		require.Error(t, err)
		assert.Nil(t, ev)
	})
}

func TestEvidence_Validate(t *testing.T) {
	t.Run("nil record fails", func(t *testing.T) {
		var ev *evidence.Evidence

		err := ev.Validate()

		require.Error(t, err)
		assert.Equal(t, evidence.ErrEvidenceIsNotConstructed, err)
	})

	t.Run("directly instantiated record fails", func(t *testing.T) {
		ev := &evidence.Evidence{}

		err := ev.Validate()

		require.Error(t, err)
		assert.Equal(t, evidence.ErrEvidenceIsNotConstructed, err)
	})
}
