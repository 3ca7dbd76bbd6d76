package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidGroupSize = errors.New("group size must be at least two")
	ErrNegativeAmount   = errors.New("booking amount cannot be negative")
)

// NoPrimaryTicketType is the sentinel recorded when a booking carries no
// ticket line at all (add-ons only).
const NoPrimaryTicketType = "none"

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusCheckedIn Status = "Checked-In"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type AddOnSelection struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
}

// Draft is the finalized record an order ledger emits at checkout, before
// the booking store assigns it an id.
type Draft struct {
	CustomerID          string
	CustomerName        string
	Date                string
	Time                string
	Amount              decimal.Decimal
	Status              Status
	Platform            string
	TicketCount         int
	AddOns              []AddOnSelection
	PrimaryTicketTypeID string
	GroupSize           int
}

// Booking is a persisted booking record.
type Booking struct {
	id                  uuid.UUID
	customerID          string
	customerName        string
	date                string
	time                string
	amount              decimal.Decimal
	status              Status
	platform            string
	ticketCount         int
	addOns              []AddOnSelection
	primaryTicketTypeID string
	groupSize           int
	createdAt           time.Time
	updatedAt           time.Time
}

func NewBooking(draft Draft) (*Booking, error) {
	if !draft.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if draft.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	primary := draft.PrimaryTicketTypeID
	if primary == "" {
		primary = NoPrimaryTicketType
	}
	return &Booking{
		id:                  uuid.New(),
		customerID:          draft.CustomerID,
		customerName:        draft.CustomerName,
		date:                draft.Date,
		time:                draft.Time,
		amount:              draft.Amount,
		status:              draft.Status,
		platform:            draft.Platform,
		ticketCount:         draft.TicketCount,
		addOns:              draft.AddOns,
		primaryTicketTypeID: primary,
		groupSize:           draft.GroupSize,
	}, nil
}

// NewGroupBooking builds a bulk group booking: one record covering the whole
// party, priced per head.
func NewGroupBooking(draft Draft, groupSize int, perHead decimal.Decimal) (*Booking, error) {
	if groupSize < 2 {
		return nil, ErrInvalidGroupSize
	}
	draft.GroupSize = groupSize
	draft.TicketCount = groupSize
	draft.Amount = perHead.Mul(decimal.NewFromInt(int64(groupSize)))
	return NewBooking(draft)
}

func ReconstructBooking(
	id uuid.UUID,
	customerID, customerName, date, timeOfDay string,
	amount decimal.Decimal,
	status Status,
	platform string,
	ticketCount int,
	addOns []AddOnSelection,
	primaryTicketTypeID string,
	groupSize int,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                  id,
		customerID:          customerID,
		customerName:        customerName,
		date:                date,
		time:                timeOfDay,
		amount:              amount,
		status:              status,
		platform:            platform,
		ticketCount:         ticketCount,
		addOns:              addOns,
		primaryTicketTypeID: primaryTicketTypeID,
		groupSize:           groupSize,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// UpdateStatus moves the booking to a new status. A cancelled booking stays
// cancelled.
func (b *Booking) UpdateStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if b.status == StatusCancelled && next != StatusCancelled {
		return ErrInvalidStatus
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() string          { return b.customerID }
func (b *Booking) CustomerName() string        { return b.customerName }
func (b *Booking) Date() string                { return b.date }
func (b *Booking) Time() string                { return b.time }
func (b *Booking) Amount() decimal.Decimal     { return b.amount }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Platform() string            { return b.platform }
func (b *Booking) TicketCount() int            { return b.ticketCount }
func (b *Booking) AddOns() []AddOnSelection    { return b.addOns }
func (b *Booking) PrimaryTicketTypeID() string { return b.primaryTicketTypeID }
func (b *Booking) GroupSize() int              { return b.groupSize }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
