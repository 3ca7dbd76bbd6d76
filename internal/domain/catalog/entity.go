package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("catalog item name cannot be empty")
	ErrNegativePrice = errors.New("catalog item price cannot be negative")
)

// TicketType is an admission product sold at the spot terminal and through
// the booking panels.
type TicketType struct {
	id        uuid.UUID
	name      string
	baseCost  decimal.Decimal
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTicketType(name string, baseCost decimal.Decimal) (*TicketType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if baseCost.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &TicketType{
		id:       uuid.New(),
		name:     name,
		baseCost: baseCost,
		isActive: true,
	}, nil
}

func ReconstructTicketType(id uuid.UUID, name string, baseCost decimal.Decimal, isActive bool, createdAt, updatedAt time.Time) *TicketType {
	return &TicketType{
		id:        id,
		name:      name,
		baseCost:  baseCost,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *TicketType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	t.name = name
	return nil
}

func (t *TicketType) Reprice(baseCost decimal.Decimal) error {
	if baseCost.IsNegative() {
		return ErrNegativePrice
	}
	t.baseCost = baseCost
	return nil
}

func (t *TicketType) Activate()   { t.isActive = true }
func (t *TicketType) Deactivate() { t.isActive = false }

func (t *TicketType) ID() uuid.UUID            { return t.id }
func (t *TicketType) Name() string             { return t.name }
func (t *TicketType) BaseCost() decimal.Decimal { return t.baseCost }
func (t *TicketType) IsActive() bool           { return t.isActive }
func (t *TicketType) CreatedAt() time.Time     { return t.createdAt }
func (t *TicketType) UpdatedAt() time.Time     { return t.updatedAt }

// AddOn is a non-admission extra (locker, parking, merch bundle).
type AddOn struct {
	id        uuid.UUID
	name      string
	price     decimal.Decimal
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAddOn(name string, price decimal.Decimal) (*AddOn, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &AddOn{
		id:       uuid.New(),
		name:     name,
		price:    price,
		isActive: true,
	}, nil
}

func ReconstructAddOn(id uuid.UUID, name string, price decimal.Decimal, isActive bool, createdAt, updatedAt time.Time) *AddOn {
	return &AddOn{
		id:        id,
		name:      name,
		price:     price,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *AddOn) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	a.name = name
	return nil
}

func (a *AddOn) Reprice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	a.price = price
	return nil
}

func (a *AddOn) Activate()   { a.isActive = true }
func (a *AddOn) Deactivate() { a.isActive = false }

func (a *AddOn) ID() uuid.UUID          { return a.id }
func (a *AddOn) Name() string           { return a.name }
func (a *AddOn) Price() decimal.Decimal { return a.price }
func (a *AddOn) IsActive() bool         { return a.isActive }
func (a *AddOn) CreatedAt() time.Time   { return a.createdAt }
func (a *AddOn) UpdatedAt() time.Time   { return a.updatedAt }
