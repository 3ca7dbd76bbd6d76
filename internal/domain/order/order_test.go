//go:build unit

package order_test

import (
	"testing"
	"time"

	"boxoffice/internal/domain/booking"
	"boxoffice/internal/domain/customer"
	"boxoffice/internal/domain/order"
	"boxoffice/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticketItem(name string, price int64) order.Item {
	p := decimal.NewFromInt(price)
	return order.Item{ID: uuid.New(), Name: name, BaseCost: &p, IsTicket: true}
}

func addOnItem(name string, price int64) order.Item {
	p := decimal.NewFromInt(price)
	return order.Item{ID: uuid.New(), Name: name, Price: &p}
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("creates a line and merges repeated adds into it", func(t *testing.T) {
		o := order.NewOrder()
		adult := ticketItem("Adult", 20)

		change, err := o.AddItem(adult, 1)
		require.NoError(t, err)
		assert.Equal(t, order.LineAdded, change)

		change, err = o.AddItem(adult, 1)
		require.NoError(t, err)
		assert.Equal(t, order.LineUpdated, change)

		lines := o.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("negative delta clamps at zero and removes the line", func(t *testing.T) {
		o := order.NewOrder()
		adult := ticketItem("Adult", 20)

		_, err := o.AddItem(adult, 2)
		require.NoError(t, err)

		change, err := o.AddItem(adult, -5)
		require.NoError(t, err)
		assert.Equal(t, order.LineRemoved, change)
		assert.True(t, o.IsEmpty())
	})

	t.Run("negative delta for an absent item is a no-op", func(t *testing.T) {
		o := order.NewOrder()

		change, err := o.AddItem(ticketItem("Adult", 20), -1)
		require.NoError(t, err)
		assert.Equal(t, order.NoChange, change)
		assert.True(t, o.IsEmpty())
	})

	t.Run("item snapshot without a price is rejected and leaves the order unchanged", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 1)
		require.NoError(t, err)

		broken := order.Item{ID: uuid.New(), Name: "Broken"}
		change, err := o.AddItem(broken, 1)
		assert.ErrorIs(t, err, order.ErrMalformedItem)
		assert.Equal(t, order.NoChange, change)
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("item snapshot without a name is rejected", func(t *testing.T) {
		o := order.NewOrder()
		nameless := ticketItem("", 10)

		_, err := o.AddItem(nameless, 1)
		assert.ErrorIs(t, err, order.ErrMalformedItem)
	})

	t.Run("base cost wins over price when both are set", func(t *testing.T) {
		o := order.NewOrder()
		base := decimal.NewFromInt(20)
		alt := decimal.NewFromInt(5)
		item := order.Item{ID: uuid.New(), Name: "Combo", BaseCost: &base, Price: &alt, IsTicket: true}

		_, err := o.AddItem(item, 1)
		require.NoError(t, err)
		assert.True(t, o.Lines()[0].UnitPrice.Equal(base))
	})
}

func TestOrder_SetQuantity(t *testing.T) {
	t.Run("sets the absolute quantity", func(t *testing.T) {
		o := order.NewOrder()
		adult := ticketItem("Adult", 20)
		_, err := o.AddItem(adult, 1)
		require.NoError(t, err)

		change, err := o.SetQuantity(adult, 5)
		require.NoError(t, err)
		assert.Equal(t, order.LineUpdated, change)
		assert.Equal(t, 5, o.Lines()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		o := order.NewOrder()
		adult := ticketItem("Adult", 20)
		_, err := o.AddItem(adult, 3)
		require.NoError(t, err)

		change, err := o.SetQuantity(adult, 0)
		require.NoError(t, err)
		assert.Equal(t, order.LineRemoved, change)
		assert.True(t, o.IsEmpty())
	})

	t.Run("negative is treated as zero", func(t *testing.T) {
		o := order.NewOrder()
		adult := ticketItem("Adult", 20)
		_, err := o.AddItem(adult, 3)
		require.NoError(t, err)

		change, err := o.SetQuantity(adult, -4)
		require.NoError(t, err)
		assert.Equal(t, order.LineRemoved, change)
		assert.True(t, o.IsEmpty())
	})

	t.Run("positive quantity for an absent item creates the line", func(t *testing.T) {
		o := order.NewOrder()

		change, err := o.SetQuantity(ticketItem("Adult", 20), 2)
		require.NoError(t, err)
		assert.Equal(t, order.LineAdded, change)
		assert.Equal(t, 2, o.Lines()[0].Quantity)
	})
}

func TestOrder_RemoveLine(t *testing.T) {
	t.Run("drops the line at index regardless of quantity", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 3)
		require.NoError(t, err)
		_, err = o.AddItem(addOnItem("Locker", 5), 1)
		require.NoError(t, err)

		removed, err := o.RemoveLine(0)
		require.NoError(t, err)
		assert.Equal(t, "Adult", removed.Name)
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, "Locker", o.Lines()[0].Name)
	})

	t.Run("out of range index", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 1)
		require.NoError(t, err)

		_, err = o.RemoveLine(1)
		assert.ErrorIs(t, err, order.ErrLineIndexOutOfRange)
		_, err = o.RemoveLine(-1)
		assert.ErrorIs(t, err, order.ErrLineIndexOutOfRange)
	})
}

func TestOrder_Totals(t *testing.T) {
	t.Run("two adults and a locker", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 2)
		require.NoError(t, err)
		_, err = o.AddItem(addOnItem("Locker", 5), 1)
		require.NoError(t, err)

		totals := o.Totals()
		assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(45)))
		assert.True(t, totals.Total.Equal(decimal.NewFromInt(45)))

		require.NoError(t, o.ApplyDiscountCode("SAVE10", promotion.NewStaticTable()))
		totals = o.Totals()
		assert.True(t, totals.Discount.Equal(decimal.NewFromInt(10)))
		assert.True(t, totals.Total.Equal(decimal.NewFromInt(35)))
	})

	t.Run("total clamps at zero when the discount exceeds the subtotal", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(addOnItem("Locker", 15), 1)
		require.NoError(t, err)

		require.NoError(t, o.ApplyDiscountCode("SAVE20", promotion.NewStaticTable()))
		totals := o.Totals()
		assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(15)))
		assert.True(t, totals.Total.IsZero())
	})
}

func TestOrder_ApplyDiscountCode(t *testing.T) {
	t.Run("unknown code clears an active discount before erroring", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 2)
		require.NoError(t, err)

		require.NoError(t, o.ApplyDiscountCode("SAVE10", promotion.NewStaticTable()))
		assert.Equal(t, "SAVE10", o.DiscountCode())

		err = o.ApplyDiscountCode("BOGUS", promotion.NewStaticTable())
		assert.ErrorIs(t, err, order.ErrUnknownDiscountCode)
		assert.Empty(t, o.DiscountCode())
		assert.True(t, o.Totals().Discount.IsZero())
	})

	t.Run("reapplying replaces the previous discount", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 2)
		require.NoError(t, err)

		require.NoError(t, o.ApplyDiscountCode("SAVE10", promotion.NewStaticTable()))
		require.NoError(t, o.ApplyDiscountCode("SAVE20", promotion.NewStaticTable()))
		assert.Equal(t, "SAVE20", o.DiscountCode())
		assert.True(t, o.Totals().Discount.Equal(decimal.NewFromInt(20)))
	})
}

func TestOrder_ValidateCheckout(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		o := order.NewOrder()
		err := o.ValidateCheckout(decimal.NewFromInt(100))
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("insufficient cash", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 2)
		require.NoError(t, err)

		err = o.ValidateCheckout(decimal.NewFromInt(39))
		assert.ErrorIs(t, err, order.ErrInsufficientPayment)
	})

	t.Run("exact cash passes", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 2)
		require.NoError(t, err)

		assert.NoError(t, o.ValidateCheckout(decimal.NewFromInt(40)))
	})

	t.Run("zero total accepts any tender", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(addOnItem("Locker", 15), 1)
		require.NoError(t, err)
		require.NoError(t, o.ApplyDiscountCode("SAVE20", promotion.NewStaticTable()))

		assert.NoError(t, o.ValidateCheckout(decimal.Zero))
	})
}

func TestOrder_ChangeDue(t *testing.T) {
	o := order.NewOrder()
	_, err := o.AddItem(ticketItem("Adult", 20), 2)
	require.NoError(t, err)
	_, err = o.AddItem(addOnItem("Locker", 5), 1)
	require.NoError(t, err)
	require.NoError(t, o.ApplyDiscountCode("SAVE10", promotion.NewStaticTable()))

	assert.True(t, o.ChangeDue(decimal.NewFromInt(40)).Equal(decimal.NewFromInt(5)))
	assert.True(t, o.ChangeDue(decimal.NewFromInt(30)).IsZero())
}

func TestOrder_BuildBooking(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)

	t.Run("tickets and add-ons split into count and selections", func(t *testing.T) {
		o := order.NewOrder()
		adult := ticketItem("Adult", 20)
		locker := addOnItem("Locker", 5)
		_, err := o.AddItem(adult, 2)
		require.NoError(t, err)
		_, err = o.AddItem(locker, 1)
		require.NoError(t, err)

		draft := o.BuildBooking(now, "POS")
		assert.Equal(t, 2, draft.TicketCount)
		assert.Equal(t, adult.ID.String(), draft.PrimaryTicketTypeID)
		assert.Equal(t, "2026-03-14", draft.Date)
		assert.Equal(t, "15:09", draft.Time)
		assert.Equal(t, "POS", draft.Platform)
		assert.Equal(t, booking.StatusConfirmed, draft.Status)
		assert.Equal(t, customer.WalkInID, draft.CustomerID)
		require.Len(t, draft.AddOns, 1)
		assert.Equal(t, locker.ID, draft.AddOns[0].ID)
		assert.Equal(t, 1, draft.AddOns[0].Quantity)
	})

	t.Run("add-ons only records the no-ticket sentinel", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(addOnItem("Locker", 5), 2)
		require.NoError(t, err)

		draft := o.BuildBooking(now, "POS")
		assert.Equal(t, 0, draft.TicketCount)
		assert.Equal(t, booking.NoPrimaryTicketType, draft.PrimaryTicketTypeID)
	})

	t.Run("amount reflects the discounted total", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.AddItem(ticketItem("Adult", 20), 2)
		require.NoError(t, err)
		require.NoError(t, o.ApplyDiscountCode("SAVE10", promotion.NewStaticTable()))

		draft := o.BuildBooking(now, "POS")
		assert.True(t, draft.Amount.Equal(decimal.NewFromInt(30)))
	})
}

func TestOrder_Customer(t *testing.T) {
	t.Run("starts as walk-in", func(t *testing.T) {
		o := order.NewOrder()
		assert.True(t, o.Customer().IsWalkIn())
	})

	t.Run("registering a named walk-in assigns a session-local id", func(t *testing.T) {
		o := order.NewOrder()
		ref, err := o.RegisterWalkInAsNamed("Ana", "", "")
		require.NoError(t, err)
		assert.True(t, ref.IsSessionLocal())
		assert.Equal(t, "Ana", o.Customer().Name)
	})

	t.Run("all fields blank is a validation error", func(t *testing.T) {
		o := order.NewOrder()
		_, err := o.RegisterWalkInAsNamed("  ", "", "")
		assert.ErrorIs(t, err, order.ErrValidation)
		assert.True(t, o.Customer().IsWalkIn())
	})
}

func TestOrder_Reset(t *testing.T) {
	o := order.NewOrder()
	_, err := o.AddItem(ticketItem("Adult", 20), 2)
	require.NoError(t, err)
	require.NoError(t, o.ApplyDiscountCode("SAVE10", promotion.NewStaticTable()))
	_, err = o.RegisterWalkInAsNamed("Ana", "", "")
	require.NoError(t, err)

	o.Reset()
	assert.True(t, o.IsEmpty())
	assert.Empty(t, o.DiscountCode())
	assert.True(t, o.Customer().IsWalkIn())

	// idempotent
	o.Reset()
	assert.True(t, o.IsEmpty())
}
