package request

import (
	"github.com/shopspring/decimal"
)

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Confirmed Checked-In Cancelled"`
}

// CreateGroupBookingRequest books a party in one record with per-head
// pricing. Capacity is not checked; see the time-slot panel for headroom.
type CreateGroupBookingRequest struct {
	CustomerID          string          `json:"customer_id" binding:"required"`
	CustomerName        string          `json:"customer_name" binding:"required"`
	Date                string          `json:"date" binding:"required,datetime=2006-01-02"`
	Time                string          `json:"time" binding:"required,datetime=15:04"`
	GroupSize           int             `json:"group_size" binding:"required,min=2"`
	PerHead             decimal.Decimal `json:"per_head" binding:"required"`
	PrimaryTicketTypeID string          `json:"primary_ticket_type_id" binding:"required"`
}
