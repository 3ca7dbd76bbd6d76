package request

import (
	"boxoffice/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type CreateTicketTypeRequest struct {
	Name     string          `json:"name" binding:"required"`
	BaseCost decimal.Decimal `json:"base_cost" binding:"required"`
}

func (r CreateTicketTypeRequest) ToDomain() (*catalog.TicketType, error) {
	return catalog.NewTicketType(r.Name, r.BaseCost)
}

type UpdateTicketTypeRequest struct {
	Name     *string          `json:"name,omitempty"`
	BaseCost *decimal.Decimal `json:"base_cost,omitempty"`
}

type CreateAddOnRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

func (r CreateAddOnRequest) ToDomain() (*catalog.AddOn, error) {
	return catalog.NewAddOn(r.Name, r.Price)
}

type UpdateAddOnRequest struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

type CreateTimeSlotRequest struct {
	Label     string `json:"label" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
}

func (r CreateTimeSlotRequest) ToDomain() (*catalog.TimeSlotDef, error) {
	return catalog.NewTimeSlotDef(r.Label, r.StartTime, r.EndTime, r.Capacity)
}

type UpdateTimeSlotRequest struct {
	Capacity *int `json:"capacity,omitempty"`
}
