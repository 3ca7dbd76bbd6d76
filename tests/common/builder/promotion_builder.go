//go:build unit || e2e

package builder

import (
	"time"

	"boxoffice/internal/domain/promotion"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionBuilder struct {
	ID         uuid.UUID
	Code       string
	Kind       promotion.Kind
	Amount     decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
	UsageLimit *int
	UsedCount  int
	IsActive   bool
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:       uuid.New(),
		Code:     "SAVE10",
		Kind:     promotion.KindFixed,
		Amount:   decimal.NewFromInt(10),
		IsActive: true,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PromotionBuilder) BuildDomain() *promotion.Promotion {
	now := time.Now()
	return promotion.ReconstructPromotion(
		b.ID, b.Code, b.Kind, b.Amount,
		b.ValidFrom, b.ValidTo, b.UsageLimit,
		b.UsedCount, b.IsActive, now, now,
	)
}

func (b *PromotionBuilder) BuildReadModel() *queries.PromotionView {
	now := time.Now()
	return &queries.PromotionView{
		ID:         b.ID,
		Code:       b.Code,
		Kind:       string(b.Kind),
		Amount:     b.Amount,
		ValidFrom:  b.ValidFrom,
		ValidTo:    b.ValidTo,
		UsageLimit: b.UsageLimit,
		UsedCount:  b.UsedCount,
		IsActive:   b.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Fluent builder methods
func (b *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	b.Code = code
	return b
}

func (b *PromotionBuilder) AsPercent(amount decimal.Decimal) *PromotionBuilder {
	b.Kind = promotion.KindPercent
	b.Amount = amount
	return b
}

func (b *PromotionBuilder) WithWindow(from, to time.Time) *PromotionBuilder {
	b.ValidFrom = &from
	b.ValidTo = &to
	return b
}

func (b *PromotionBuilder) WithUsageLimit(limit, used int) *PromotionBuilder {
	b.UsageLimit = &limit
	b.UsedCount = used
	return b
}

func (b *PromotionBuilder) AsInactive() *PromotionBuilder {
	b.IsActive = false
	return b
}
