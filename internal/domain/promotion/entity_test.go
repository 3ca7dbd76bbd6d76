//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"boxoffice/internal/domain/order"
	"boxoffice/internal/domain/promotion"
	"boxoffice/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotion(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		kind    promotion.Kind
		amount  decimal.Decimal
		wantErr error
	}{
		{
			name:   "valid fixed promotion",
			code:   "save10",
			kind:   promotion.KindFixed,
			amount: decimal.NewFromInt(10),
		},
		{
			name:   "valid percent promotion",
			code:   "HALF",
			kind:   promotion.KindPercent,
			amount: decimal.NewFromInt(50),
		},
		{
			name:    "blank code",
			code:    "   ",
			kind:    promotion.KindFixed,
			amount:  decimal.NewFromInt(10),
			wantErr: promotion.ErrEmptyCode,
		},
		{
			name:    "unknown kind",
			code:    "SAVE10",
			kind:    promotion.Kind("bogus"),
			amount:  decimal.NewFromInt(10),
			wantErr: promotion.ErrInvalidKind,
		},
		{
			name:    "non-positive amount",
			code:    "SAVE10",
			kind:    promotion.KindFixed,
			amount:  decimal.Zero,
			wantErr: promotion.ErrInvalidAmount,
		},
		{
			name:    "percent over 100",
			code:    "SAVE10",
			kind:    promotion.KindPercent,
			amount:  decimal.NewFromInt(120),
			wantErr: promotion.ErrInvalidPercent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := promotion.NewPromotion(tt.code, tt.kind, tt.amount, nil, nil, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.IsActive())
		})
	}

	t.Run("code is normalized to upper case", func(t *testing.T) {
		p, err := promotion.NewPromotion("  save10 ", promotion.KindFixed, decimal.NewFromInt(10), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", p.Code())
	})
}

func TestPromotion_ValidateUsage(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	t.Run("valid inside window and under limit", func(t *testing.T) {
		p := builder.NewPromotionBuilder().
			WithWindow(before, after).
			WithUsageLimit(5, 4).
			BuildDomain()
		assert.NoError(t, p.ValidateUsage(now))
	})

	t.Run("not yet valid", func(t *testing.T) {
		p := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.ValidFrom = &after
		}).BuildDomain()
		assert.ErrorIs(t, p.ValidateUsage(now), promotion.ErrNotYetValid)
	})

	t.Run("expired", func(t *testing.T) {
		p := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.ValidTo = &before
		}).BuildDomain()
		assert.ErrorIs(t, p.ValidateUsage(now), promotion.ErrExpired)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		p := builder.NewPromotionBuilder().WithUsageLimit(3, 3).BuildDomain()
		assert.ErrorIs(t, p.ValidateUsage(now), promotion.ErrUsageLimitExceeded)
	})

	t.Run("inactive", func(t *testing.T) {
		p := builder.NewPromotionBuilder().AsInactive().BuildDomain()
		assert.ErrorIs(t, p.ValidateUsage(now), promotion.ErrInactive)
	})
}

func TestPromotion_FlatAmount(t *testing.T) {
	t.Run("fixed amount ignores the subtotal", func(t *testing.T) {
		p, err := promotion.NewPromotion("SAVE10", promotion.KindFixed, decimal.NewFromInt(10), nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, p.FlatAmount(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(10)))
	})

	t.Run("percent resolves against the subtotal rounded to cents", func(t *testing.T) {
		p, err := promotion.NewPromotion("TENOFF", promotion.KindPercent, decimal.NewFromInt(10), nil, nil, nil)
		require.NoError(t, err)
		got := p.FlatAmount(decimal.RequireFromString("45.55"))
		assert.True(t, got.Equal(decimal.RequireFromString("4.56")), "got %s", got)
	})
}

func TestStaticTable(t *testing.T) {
	table := promotion.NewStaticTable()

	amount, err := table.Resolve("SAVE10", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(10)))

	amount, err = table.Resolve("SAVE20", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(20)))

	_, err = table.Resolve("BOGUS", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, order.ErrUnknownDiscountCode)
}
