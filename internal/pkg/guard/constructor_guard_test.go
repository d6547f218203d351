package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("entity not constructed")

		err := g.Validate(notConstructed)

		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard copies validate independently", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		gCopy := g

		require.NoError(t, g.Validate(nil))
		require.NoError(t, gCopy.Validate(nil))
	})
}

// The pattern every guarded type in the engine follows: the constructor arms
// the guard, Validate rejects zero values with a type-specific error.
func TestConstructorGuard_GuardedTypeUsage(t *testing.T) {
	type fee struct {
		amount int64
		guard  guard.ConstructorGuard
	}

	errFeeNotConstructed := errors.New("fee must be created via newFee")

	newFee := func(amount int64) (fee, error) {
		if amount < 0 {
			return fee{}, errors.New("amount cannot be negative")
		}
		return fee{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed value validates", func(t *testing.T) {
		f, err := newFee(500)

		require.NoError(t, err)
		require.NoError(t, f.guard.Validate(errFeeNotConstructed))
		assert.Equal(t, int64(500), f.amount)
	})

	t.Run("zero value is rejected with the type error", func(t *testing.T) {
		var f fee

		err := f.guard.Validate(errFeeNotConstructed)

		assert.Equal(t, errFeeNotConstructed, err)
	})
}
