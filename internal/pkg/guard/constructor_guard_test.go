package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		wantErr := errors.New("entity not constructed")

		err := g.Validate(wantErr)

		require.Error(t, err)
		assert.Equal(t, wantErr, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type code struct {
		value string
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("code must be created via newCode")
	newCode := func(value string) (code, error) {
		if value == "" {
			return code{}, errors.New("value is required")
		}
		return code{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		c, err := newCode("A1B2C3")
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errNotConstructed))
		assert.Equal(t, "A1B2C3", c.value)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var c code
		err := c.guard.Validate(errNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
