package guard_test

import (
	"errors"
	"sync"
	"testing"

	"pizzeria/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("ticket not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

type ticket struct {
	number int
	guard  guard.ConstructorGuard
}

var errTicketNotConstructed = errors.New("ticket must be created via newTicket")

func newTicket(number int) (ticket, error) {
	if number <= 0 {
		return ticket{}, errors.New("number must be positive")
	}
	return ticket{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (t ticket) Validate() error {
	return t.guard.Validate(errTicketNotConstructed)
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	t.Run("constructed_value_is_valid", func(t *testing.T) {
		tk, err := newTicket(7)

		require.NoError(t, err)
		require.NoError(t, tk.Validate())
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var tk ticket

		require.ErrorIs(t, tk.Validate(), errTicketNotConstructed)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		tk, err := newTicket(0)

		require.Error(t, err)
		require.ErrorIs(t, tk.Validate(), errTicketNotConstructed)
	})

	t.Run("copies_keep_the_guard", func(t *testing.T) {
		tk, _ := newTicket(3)
		cp := tk

		require.NoError(t, cp.Validate())
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}
