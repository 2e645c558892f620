package master_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaster(t *testing.T) {
	validID := kernel.NewUUID()
	validLocation, _ := kernel.NewLocation(55.7558, 37.6173)

	t.Run("should create valid master with all valid parameters", func(t *testing.T) {
		m, err := master.NewMaster(validID, "Ivan Petrov", 4.5, validLocation)

		require.NoError(t, err)
		assert.NotNil(t, m)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "Ivan Petrov", m.Name())
		assert.InDelta(t, 4.5, m.Rating(), 0.000001)
		assert.True(t, m.IsAvailable())
		assert.Equal(t, validLocation, m.Location())
	})

	t.Run("should accept boundary ratings", func(t *testing.T) {
		for _, rating := range []float64{0, 5} {
			_, err := master.NewMaster(validID, "Ivan Petrov", rating, validLocation)
			require.NoError(t, err)
		}
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := master.NewMaster(invalidID, "Ivan Petrov", 4.5, validLocation)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		m, err := master.NewMaster(validID, "  ", 4.5, validLocation)

		require.Error(t, err)
		assert.Nil(t, m)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with out of range rating", func(t *testing.T) {
		for _, rating := range []float64{-0.1, 5.1, 100} {
			m, err := master.NewMaster(validID, "Ivan Petrov", rating, validLocation)

			require.Error(t, err)
			assert.Nil(t, m)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should fail with invalid location", func(t *testing.T) {
		var invalidLocation kernel.Location

		m, err := master.NewMaster(validID, "Ivan Petrov", 4.5, invalidLocation)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "location must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidLocation kernel.Location

		m, err := master.NewMaster(invalidID, "", -1, invalidLocation)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "rating")
		assert.Contains(t, err.Error(), "location must be created")
	})
}

func TestRestoreMaster(t *testing.T) {
	validID := kernel.NewUUID()
	validLocation, _ := kernel.NewLocation(55.7558, 37.6173)

	t.Run("should restore unavailable master", func(t *testing.T) {
		m, err := master.RestoreMaster(validID, "Ivan Petrov", 3.8, false, validLocation)

		require.NoError(t, err)
		assert.False(t, m.IsAvailable())
		assert.InDelta(t, 3.8, m.Rating(), 0.000001)
	})

	t.Run("should keep validation of stored fields", func(t *testing.T) {
		m, err := master.RestoreMaster(validID, "", 3.8, true, validLocation)

		require.Error(t, err)
		assert.Nil(t, m)
	})
}

func TestMaster_Validate(t *testing.T) {
	t.Run("should fail validation for nil master", func(t *testing.T) {
		var m *master.Master

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, master.ErrMasterIsNotConstructed, err)
	})

	t.Run("should fail validation for directly instantiated master", func(t *testing.T) {
		m := &master.Master{}

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, master.ErrMasterIsNotConstructed, err)
	})
}

func TestMaster_SetAvailability(t *testing.T) {
	location, _ := kernel.NewLocation(55.7558, 37.6173)
	m, err := master.NewMaster(kernel.NewUUID(), "Ivan Petrov", 4.5, location)
	require.NoError(t, err)

	m.SetAvailability(false)
	assert.False(t, m.IsAvailable())

	m.SetAvailability(true)
	assert.True(t, m.IsAvailable())
}

func TestMaster_DistanceTo(t *testing.T) {
	home, _ := kernel.NewLocation(40.7128, -74.0060)
	timesSquare, _ := kernel.NewLocation(40.7580, -73.9855)
	m, err := master.NewMaster(kernel.NewUUID(), "Ivan Petrov", 4.5, home)
	require.NoError(t, err)

	km, err := m.DistanceTo(timesSquare)

	require.NoError(t, err)
	assert.InDelta(t, 5.5, km, 0.5)
}

func TestMaster_IsEqual(t *testing.T) {
	location, _ := kernel.NewLocation(5, 7)
	id := kernel.NewUUID()

	a, _ := master.NewMaster(id, "Ivan Petrov", 4.5, location)
	b, _ := master.NewMaster(id, "Someone Else", 1, location)
	c, _ := master.NewMaster(kernel.NewUUID(), "Ivan Petrov", 4.5, location)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
