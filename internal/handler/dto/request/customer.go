package request

import (
	"boxoffice/internal/domain/customer"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (r CreateCustomerRequest) ToDomain() (*customer.Customer, error) {
	return customer.NewCustomer(r.Name, r.Email, r.Phone)
}

type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
