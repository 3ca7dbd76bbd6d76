package queries

import (
	"boxoffice/internal/domain/order"
	"boxoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpotLineView struct {
	ItemID    uuid.UUID       `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	IsTicket  bool            `json:"is_ticket"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type SpotCustomerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SpotOrderView struct {
	TerminalID     string           `json:"terminal_id"`
	Lines          []SpotLineView   `json:"lines"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	DiscountCode   string           `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	Total          decimal.Decimal  `json:"total"`
	ChangeDue      *decimal.Decimal `json:"change_due,omitempty"`
	Customer       SpotCustomerView `json:"customer"`
}

// NewSpotOrderView snapshots a live order. Callers must hold the session
// lock while it runs.
func NewSpotOrderView(terminalID string, o *order.Order) *SpotOrderView {
	totals := o.Totals()
	lines := o.Lines()
	view := &SpotOrderView{
		TerminalID:     terminalID,
		Lines:          make([]SpotLineView, len(lines)),
		Subtotal:       totals.Subtotal,
		DiscountCode:   o.DiscountCode(),
		DiscountAmount: totals.Discount,
		Total:          totals.Total,
		Customer: SpotCustomerView{
			ID:   o.Customer().ID,
			Name: o.Customer().Name,
		},
	}
	for i, l := range lines {
		view.Lines[i] = SpotLineView{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			IsTicket:  l.IsTicket,
			LineTotal: l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))),
		}
	}
	return view
}

type SpotQueries interface {
	// View returns the current order. A non-nil cashTendered adds a change
	// preview without mutating anything.
	View(terminalID string, cashTendered *decimal.Decimal) (*SpotOrderView, error)
}

type spotQueriesImpl struct {
	sessions *shared.SessionStore
}

func NewSpotQueries(sessions *shared.SessionStore) SpotQueries {
	return &spotQueriesImpl{sessions: sessions}
}

func (q *spotQueriesImpl) View(terminalID string, cashTendered *decimal.Decimal) (*SpotOrderView, error) {
	var view *SpotOrderView
	err := q.sessions.Get(terminalID).Mutate(func(o *order.Order) error {
		view = NewSpotOrderView(terminalID, o)
		if cashTendered != nil {
			change := o.ChangeDue(*cashTendered)
			view.ChangeDue = &change
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
