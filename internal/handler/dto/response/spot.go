package response

import (
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpotOrderResponse struct {
	Order  *queries.SpotOrderView `json:"order"`
	Notice *commands.Notice       `json:"notice,omitempty"`
}

type CheckoutResponse struct {
	BookingID uuid.UUID              `json:"booking_id"`
	ChangeDue decimal.Decimal        `json:"change_due"`
	Order     *queries.SpotOrderView `json:"order"`
	Notice    commands.Notice        `json:"notice"`
}

func FromSpotResult(result *commands.SpotResult) *SpotOrderResponse {
	return &SpotOrderResponse{
		Order:  result.Order,
		Notice: &result.Notice,
	}
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID: result.BookingID,
		ChangeDue: result.ChangeDue,
		Order:     result.Order,
		Notice:    result.Notice,
	}
}
