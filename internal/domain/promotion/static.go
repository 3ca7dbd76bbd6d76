package promotion

import (
	"boxoffice/internal/domain/order"

	"github.com/shopspring/decimal"
)

// StaticTable is the built-in code table the spot terminal falls back to
// when no promotion row matches. It implements order.DiscountLookup.
type StaticTable struct {
	codes map[string]decimal.Decimal
}

func NewStaticTable() *StaticTable {
	return &StaticTable{
		codes: map[string]decimal.Decimal{
			"SAVE10": decimal.NewFromInt(10),
			"SAVE20": decimal.NewFromInt(20),
		},
	}
}

func (t *StaticTable) Resolve(code string, _ decimal.Decimal) (decimal.Decimal, error) {
	amount, ok := t.codes[code]
	if !ok {
		return decimal.Zero, order.ErrUnknownDiscountCode
	}
	return amount, nil
}
