//go:build unit

package booking_test

import (
	"testing"

	"boxoffice/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft() booking.Draft {
	return booking.Draft{
		CustomerID:   "walkin",
		CustomerName: "Walk-in Customer",
		Date:         "2026-03-14",
		Time:         "15:09",
		Amount:       decimal.NewFromInt(40),
		Status:       booking.StatusConfirmed,
		Platform:     "POS",
		TicketCount:  2,
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		b, err := booking.NewBooking(draft())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.NotEqual(t, "", b.ID().String())
	})

	t.Run("invalid status", func(t *testing.T) {
		d := draft()
		d.Status = booking.Status("Pending")
		_, err := booking.NewBooking(d)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("negative amount", func(t *testing.T) {
		d := draft()
		d.Amount = decimal.NewFromInt(-1)
		_, err := booking.NewBooking(d)
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})

	t.Run("empty primary ticket type falls back to the sentinel", func(t *testing.T) {
		d := draft()
		d.PrimaryTicketTypeID = ""
		b, err := booking.NewBooking(d)
		require.NoError(t, err)
		assert.Equal(t, booking.NoPrimaryTicketType, b.PrimaryTicketTypeID())
	})
}

func TestNewGroupBooking(t *testing.T) {
	t.Run("amount is per head times group size", func(t *testing.T) {
		b, err := booking.NewGroupBooking(draft(), 8, decimal.NewFromInt(15))
		require.NoError(t, err)
		assert.Equal(t, 8, b.GroupSize())
		assert.Equal(t, 8, b.TicketCount())
		assert.True(t, b.Amount().Equal(decimal.NewFromInt(120)))
	})

	t.Run("group of one is rejected", func(t *testing.T) {
		_, err := booking.NewGroupBooking(draft(), 1, decimal.NewFromInt(15))
		assert.ErrorIs(t, err, booking.ErrInvalidGroupSize)
	})
}

func TestBooking_UpdateStatus(t *testing.T) {
	t.Run("confirmed to checked-in", func(t *testing.T) {
		b, err := booking.NewBooking(draft())
		require.NoError(t, err)

		require.NoError(t, b.UpdateStatus(booking.StatusCheckedIn))
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b, err := booking.NewBooking(draft())
		require.NoError(t, err)
		require.NoError(t, b.UpdateStatus(booking.StatusCancelled))

		err = b.UpdateStatus(booking.StatusConfirmed)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancelling twice is allowed", func(t *testing.T) {
		b, err := booking.NewBooking(draft())
		require.NoError(t, err)
		require.NoError(t, b.UpdateStatus(booking.StatusCancelled))
		assert.NoError(t, b.UpdateStatus(booking.StatusCancelled))
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"Confirmed", "Checked-In", "Cancelled"} {
		s, err := booking.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(s))
	}

	_, err := booking.NewStatus("confirmed")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
