//go:build unit || e2e

package builder

import (
	"time"

	"boxoffice/internal/domain/order"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	IsTicket bool
	IsActive bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:       uuid.New(),
		Name:     "Adult",
		Price:    decimal.NewFromInt(20),
		IsTicket: true,
		IsActive: true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() order.Item {
	item := order.Item{
		ID:       b.ID,
		Name:     b.Name,
		IsTicket: b.IsTicket,
	}
	price := b.Price
	if b.IsTicket {
		item.BaseCost = &price
	} else {
		item.Price = &price
	}
	return item
}

func (b *ItemBuilder) BuildTicketTypeView() *queries.TicketTypeView {
	now := time.Now()
	return &queries.TicketTypeView{
		ID:        b.ID,
		Name:      b.Name,
		BaseCost:  b.Price,
		IsActive:  b.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ItemBuilder) BuildAddOnView() *queries.AddOnView {
	now := time.Now()
	return &queries.AddOnView{
		ID:        b.ID,
		Name:      b.Name,
		Price:     b.Price,
		IsActive:  b.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithPrice(price decimal.Decimal) *ItemBuilder {
	b.Price = price
	return b
}

func (b *ItemBuilder) AsAddOn() *ItemBuilder {
	b.IsTicket = false
	return b
}

func (b *ItemBuilder) AsInactive() *ItemBuilder {
	b.IsActive = false
	return b
}
