package order

import (
	"errors"
	"time"

	"boxoffice/internal/domain/booking"
	"boxoffice/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMalformedItem       = errors.New("catalog item is missing a name or price")
	ErrEmptyOrder          = errors.New("order has no line items")
	ErrInsufficientPayment = errors.New("cash tendered is less than the total due")
	ErrLineIndexOutOfRange = errors.New("line index out of range")
	ErrUnknownDiscountCode = errors.New("unknown discount code")
	ErrValidation          = errors.New("at least one customer field is required")
)

// Change describes what a mutation did to the ledger, so callers can word
// the notification they emit.
type Change int

const (
	NoChange Change = iota
	LineAdded
	LineUpdated
	LineRemoved
)

// Item is a snapshot of a catalog row at add-time. BaseCost is the ticket
// price field, Price the add-on price field; whichever is set wins, BaseCost
// first. The ledger never re-fetches the catalog after the snapshot is taken.
type Item struct {
	ID       uuid.UUID
	Name     string
	BaseCost *decimal.Decimal
	Price    *decimal.Decimal
	IsTicket bool
}

func (i Item) unitPrice() (decimal.Decimal, bool) {
	if i.BaseCost != nil {
		return *i.BaseCost, true
	}
	if i.Price != nil {
		return *i.Price, true
	}
	return decimal.Zero, false
}

type Line struct {
	ItemID    uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	IsTicket  bool
}

func (l Line) amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// DiscountLookup resolves a code to a flat deduction against the current
// subtotal. Implementations that model percentage promotions convert to a
// flat amount here; the ledger only ever stores the resolved amount.
type DiscountLookup interface {
	Resolve(code string, subtotal decimal.Decimal) (decimal.Decimal, error)
}

// Order is the in-session ledger for one spot-booking transaction. It is
// owned by a single terminal session and is never persisted; checkout hands
// a booking draft to the booking store and resets it.
type Order struct {
	lines          []Line
	discountAmount decimal.Decimal
	discountCode   string
	customer       customer.Ref
}

func NewOrder() *Order {
	return &Order{
		discountAmount: decimal.Zero,
		customer:       customer.WalkIn(),
	}
}

func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) DiscountCode() string    { return o.discountCode }
func (o *Order) Customer() customer.Ref  { return o.customer }
func (o *Order) IsEmpty() bool           { return len(o.lines) == 0 }

// AddItem adjusts the line for item.ID by delta, clamping at zero. A line
// that reaches zero quantity is removed, never retained. A new line is only
// created for a positive delta.
func (o *Order) AddItem(item Item, delta int) (Change, error) {
	if idx := o.indexOf(item.ID); idx >= 0 {
		return o.adjust(idx, o.lines[idx].Quantity+delta), nil
	}
	if delta <= 0 {
		return NoChange, nil
	}
	return o.appendLine(item, delta)
}

// SetQuantity is the absolute-value variant of AddItem. Negative input is
// treated as zero.
func (o *Order) SetQuantity(item Item, quantity int) (Change, error) {
	if quantity < 0 {
		quantity = 0
	}
	if idx := o.indexOf(item.ID); idx >= 0 {
		return o.adjust(idx, quantity), nil
	}
	if quantity == 0 {
		return NoChange, nil
	}
	return o.appendLine(item, quantity)
}

// RemoveLine drops the line at index outright, regardless of quantity.
func (o *Order) RemoveLine(index int) (Line, error) {
	if index < 0 || index >= len(o.lines) {
		return Line{}, ErrLineIndexOutOfRange
	}
	removed := o.lines[index]
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	return removed, nil
}

// ApplyDiscountCode replaces any active discount with the one the lookup
// resolves. An unrecognized code clears the discount entirely before the
// error is returned, so a stale discount never survives a failed apply.
func (o *Order) ApplyDiscountCode(code string, lookup DiscountLookup) error {
	amount, err := lookup.Resolve(code, o.Totals().Subtotal)
	if err != nil {
		o.discountAmount = decimal.Zero
		o.discountCode = ""
		return err
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	o.discountAmount = amount
	o.discountCode = code
	return nil
}

// Totals derives the monetary summary from the lines. The total is clamped
// at zero no matter how large the discount is.
func (o *Order) Totals() Totals {
	subtotal := decimal.Zero
	for _, l := range o.lines {
		subtotal = subtotal.Add(l.amount())
	}
	total := subtotal.Sub(o.discountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{Subtotal: subtotal, Discount: o.discountAmount, Total: total}
}

func (o *Order) ChangeDue(cashTendered decimal.Decimal) decimal.Decimal {
	change := cashTendered.Sub(o.Totals().Total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// ValidateCheckout checks the checkout preconditions without mutating
// anything. A zero-total order accepts any tendered amount.
func (o *Order) ValidateCheckout(cashTendered decimal.Decimal) error {
	if len(o.lines) == 0 {
		return ErrEmptyOrder
	}
	total := o.Totals().Total
	if total.IsPositive() && cashTendered.LessThan(total) {
		return ErrInsufficientPayment
	}
	return nil
}

// BuildBooking assembles the finalized booking draft for the current state.
// The caller persists it and then calls Reset; the ledger itself stays
// untouched so a failed persistence leaves the order open.
func (o *Order) BuildBooking(now time.Time, platform string) booking.Draft {
	ticketCount := 0
	primary := booking.NoPrimaryTicketType
	addOns := []booking.AddOnSelection{}
	for _, l := range o.lines {
		if l.IsTicket {
			ticketCount += l.Quantity
			if primary == booking.NoPrimaryTicketType {
				primary = l.ItemID.String()
			}
			continue
		}
		addOns = append(addOns, booking.AddOnSelection{
			ID:       l.ItemID,
			Name:     l.Name,
			Quantity: l.Quantity,
		})
	}

	return booking.Draft{
		CustomerID:          o.customer.ID,
		CustomerName:        o.customer.Name,
		Date:                now.Format("2006-01-02"),
		Time:                now.Format("15:04"),
		Amount:              o.Totals().Total,
		Status:              booking.StatusConfirmed,
		Platform:            platform,
		TicketCount:         ticketCount,
		AddOns:              addOns,
		PrimaryTicketTypeID: primary,
	}
}

func (o *Order) SelectCustomer(ref customer.Ref) {
	o.customer = ref
}

// RegisterWalkInAsNamed replaces the walk-in sentinel with a session-local
// customer. The temporary id is never written to the customer catalog.
func (o *Order) RegisterWalkInAsNamed(name, email, phone string) (customer.Ref, error) {
	ref, err := customer.NewSessionRef(name, email, phone)
	if err != nil {
		return customer.Ref{}, ErrValidation
	}
	o.customer = ref
	return ref, nil
}

// Reset returns the ledger to its initial state: no lines, no discount,
// walk-in customer. Idempotent.
func (o *Order) Reset() {
	o.lines = nil
	o.discountAmount = decimal.Zero
	o.discountCode = ""
	o.customer = customer.WalkIn()
}

func (o *Order) indexOf(itemID uuid.UUID) int {
	for i, l := range o.lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}

func (o *Order) adjust(idx, quantity int) Change {
	if quantity <= 0 {
		o.lines = append(o.lines[:idx], o.lines[idx+1:]...)
		return LineRemoved
	}
	o.lines[idx].Quantity = quantity
	return LineUpdated
}

func (o *Order) appendLine(item Item, quantity int) (Change, error) {
	price, ok := item.unitPrice()
	if item.Name == "" || !ok || price.IsNegative() {
		return NoChange, ErrMalformedItem
	}
	o.lines = append(o.lines, Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: price,
		Quantity:  quantity,
		IsTicket:  item.IsTicket,
	})
	return LineAdded, nil
}
