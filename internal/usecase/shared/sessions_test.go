//go:build unit

package shared_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"boxoffice/internal/domain/order"
	"boxoffice/internal/pkg/clock"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/shared"
	"boxoffice/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem() order.Item {
	return builder.NewItemBuilder().BuildDomain()
}

func TestSessionStore_Get(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	store := shared.NewSessionStore(30*time.Minute, clk)

	t.Run("creates a session on first touch", func(t *testing.T) {
		s := store.Get("terminal-1")
		require.NotNil(t, s)

		err := s.Mutate(func(o *order.Order) error {
			assert.True(t, o.IsEmpty())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("same terminal gets the same session", func(t *testing.T) {
		s := store.Get("terminal-1")
		err := s.Mutate(func(o *order.Order) error {
			_, err := o.AddItem(testItem(), 1)
			return err
		})
		require.NoError(t, err)

		again := store.Get("terminal-1")
		assert.Same(t, s, again)
	})

	t.Run("terminals are isolated", func(t *testing.T) {
		other := store.Get("terminal-2")
		err := other.Mutate(func(o *order.Order) error {
			assert.True(t, o.IsEmpty())
			return nil
		})
		require.NoError(t, err)
	})
}

func TestSessionStore_TTL(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	store := shared.NewSessionStore(30*time.Minute, clk)

	s := store.Get("terminal-1")
	err := s.Mutate(func(o *order.Order) error {
		_, err := o.AddItem(testItem(), 1)
		return err
	})
	require.NoError(t, err)

	t.Run("session survives within the ttl", func(t *testing.T) {
		clk.Add(29 * time.Minute)
		assert.Same(t, s, store.Get("terminal-1"))
	})

	t.Run("idle session is replaced after the ttl", func(t *testing.T) {
		clk.Add(31 * time.Minute)
		fresh := store.Get("terminal-1")
		assert.NotSame(t, s, fresh)

		err := fresh.Mutate(func(o *order.Order) error {
			assert.True(t, o.IsEmpty())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("zero ttl disables pruning", func(t *testing.T) {
		forever := shared.NewSessionStore(0, clk)
		s := forever.Get("terminal-1")
		clk.Add(1000 * time.Hour)
		assert.Same(t, s, forever.Get("terminal-1"))
	})
}

func TestSession_CheckoutBlocksMutations(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	store := shared.NewSessionStore(30*time.Minute, clk)
	s := store.Get("terminal-1")

	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Checkout(func(*order.Order) error {
			close(entered)
			<-release
			return nil
		})
	}()

	<-entered

	err := s.Mutate(func(*order.Order) error { return nil })
	assert.ErrorIs(t, err, errs.ErrCheckoutInProgress)

	err = s.Checkout(func(*order.Order) error { return nil })
	assert.ErrorIs(t, err, errs.ErrCheckoutInProgress)

	close(release)
	wg.Wait()

	assert.NoError(t, s.Mutate(func(*order.Order) error { return nil }))
}

func TestSession_CheckoutFailureReopens(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	store := shared.NewSessionStore(30*time.Minute, clk)
	s := store.Get("terminal-1")

	require.NoError(t, s.Mutate(func(o *order.Order) error {
		_, err := o.AddItem(testItem(), 1)
		return err
	}))

	boom := errors.New("store unavailable")
	err := s.Checkout(func(*order.Order) error { return boom })
	assert.ErrorIs(t, err, boom)

	// order stays open and mutable after a failed checkout
	require.NoError(t, s.Mutate(func(o *order.Order) error {
		assert.Len(t, o.Lines(), 1)
		return nil
	}))
}
