package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type rating struct {
		value float64
		guard guard.ConstructorGuard
	}

	var errRatingNotConstructed = errors.New("Rating must be created via NewRating")

	newRating := func(value float64) (rating, error) {
		if value < 0 || value > 5 {
			return rating{}, errors.New("rating must be between 0 and 5")
		}
		return rating{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	validateRating := func(r rating) error {
		return r.guard.Validate(errRatingNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		r, err := newRating(4.5)

		require.NoError(t, err)
		require.NoError(t, validateRating(r))
		assert.InDelta(t, 4.5, r.value, 0.0001)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r rating

		err := validateRating(r)

		require.Error(t, err)
		assert.Equal(t, errRatingNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRating(5.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 5")
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	guardCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}
