package request

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind tells the terminal which catalog table to resolve the item from.
type ItemKind string

const (
	ItemKindTicket ItemKind = "ticket"
	ItemKindAddOn  ItemKind = "addon"
)

func (k ItemKind) IsValid() bool {
	return k == ItemKindTicket || k == ItemKindAddOn
}

type AddLineRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Kind   ItemKind  `json:"kind" binding:"required,oneof=ticket addon"`
	// Delta defaults to 1 when omitted; negative values decrement.
	Delta *int `json:"delta,omitempty"`
}

func (r AddLineRequest) DeltaOrDefault() int {
	if r.Delta == nil {
		return 1
	}
	return *r.Delta
}

type SetQuantityRequest struct {
	Kind     ItemKind `json:"kind" binding:"required,oneof=ticket addon"`
	Quantity int      `json:"quantity" binding:"min=0"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyDiscountRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}

// SelectCustomerRequest either points the order at a cataloged customer or,
// when CustomerID is empty, registers a session-local walk-in from the
// contact fields.
type SelectCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
}

// CheckoutRequest carries the tendered cash as a pointer so a missing
// field fails binding instead of defaulting to zero.
type CheckoutRequest struct {
	CashTendered *decimal.Decimal `json:"cash_tendered" binding:"required"`
}

func (r CheckoutRequest) Amount() decimal.Decimal {
	if r.CashTendered == nil {
		return decimal.Zero
	}
	return *r.CashTendered
}
