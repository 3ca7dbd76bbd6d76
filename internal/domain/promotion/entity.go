package promotion

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode          = errors.New("promotion code cannot be empty")
	ErrInvalidKind        = errors.New("invalid promotion kind")
	ErrInvalidAmount      = errors.New("promotion amount must be positive")
	ErrInvalidPercent     = errors.New("percentage must be between 0 and 100")
	ErrNotYetValid        = errors.New("promotion is not yet valid")
	ErrExpired            = errors.New("promotion has expired")
	ErrUsageLimitExceeded = errors.New("promotion usage limit exceeded")
	ErrInactive           = errors.New("promotion is inactive")
)

type Kind string

const (
	KindFixed   Kind = "fixed"
	KindPercent Kind = "percent"
)

func (k Kind) IsValid() bool {
	return k == KindFixed || k == KindPercent
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Promotion is an admin-managed discount code. Fixed promotions deduct a
// flat amount; percent promotions are resolved to a flat amount against the
// subtotal at apply time, so the ledger only ever carries a flat deduction.
type Promotion struct {
	id         uuid.UUID
	code       string
	kind       Kind
	amount     decimal.Decimal
	validFrom  *time.Time
	validTo    *time.Time
	usageLimit *int
	usedCount  int
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPromotion(code string, kind Kind, amount decimal.Decimal, validFrom, validTo *time.Time, usageLimit *int) (*Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if kind == KindPercent && amount.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidPercent
	}
	return &Promotion{
		id:         uuid.New(),
		code:       code,
		kind:       kind,
		amount:     amount,
		validFrom:  validFrom,
		validTo:    validTo,
		usageLimit: usageLimit,
		isActive:   true,
	}, nil
}

func ReconstructPromotion(
	id uuid.UUID,
	code string,
	kind Kind,
	amount decimal.Decimal,
	validFrom, validTo *time.Time,
	usageLimit *int,
	usedCount int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:         id,
		code:       code,
		kind:       kind,
		amount:     amount,
		validFrom:  validFrom,
		validTo:    validTo,
		usageLimit: usageLimit,
		usedCount:  usedCount,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ValidateUsage reports whether the promotion may be applied at t.
func (p *Promotion) ValidateUsage(t time.Time) error {
	if !p.isActive {
		return ErrInactive
	}
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return ErrNotYetValid
	}
	if p.validTo != nil && t.After(*p.validTo) {
		return ErrExpired
	}
	if p.usageLimit != nil && p.usedCount >= *p.usageLimit {
		return ErrUsageLimitExceeded
	}
	return nil
}

// FlatAmount resolves the deduction against a subtotal. Percent promotions
// are computed here and never re-resolved when the order changes later.
func (p *Promotion) FlatAmount(subtotal decimal.Decimal) decimal.Decimal {
	if p.kind == KindPercent {
		return subtotal.Mul(p.amount).Div(decimal.NewFromInt(100)).Round(2)
	}
	return p.amount
}

func (p *Promotion) Deactivate() { p.isActive = false }
func (p *Promotion) Activate()   { p.isActive = true }

func (p *Promotion) ID() uuid.UUID           { return p.id }
func (p *Promotion) Code() string            { return p.code }
func (p *Promotion) Kind() Kind              { return p.kind }
func (p *Promotion) Amount() decimal.Decimal { return p.amount }
func (p *Promotion) ValidFrom() *time.Time   { return p.validFrom }
func (p *Promotion) ValidTo() *time.Time     { return p.validTo }
func (p *Promotion) UsageLimit() *int        { return p.usageLimit }
func (p *Promotion) UsedCount() int          { return p.usedCount }
func (p *Promotion) IsActive() bool          { return p.isActive }
func (p *Promotion) CreatedAt() time.Time    { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time    { return p.updatedAt }
