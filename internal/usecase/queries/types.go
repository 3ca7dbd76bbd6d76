package queries

import (
	"time"

	"boxoffice/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type TicketTypeView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	BaseCost  decimal.Decimal `json:"base_cost"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AddOnView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type TimeSlotView struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PromotionView struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidTo    *time.Time      `json:"valid_to,omitempty"`
	UsageLimit *int            `json:"usage_limit,omitempty"`
	UsedCount  int             `json:"used_count"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CustomerView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	LoyaltyPoints int       `json:"loyalty_points"`
	PastBookings  string    `json:"past_bookings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingView struct {
	ID                  uuid.UUID                `json:"id"`
	CustomerID          string                   `json:"customer_id"`
	CustomerName        string                   `json:"customer_name"`
	Date                string                   `json:"date"`
	Time                string                   `json:"time"`
	Amount              decimal.Decimal          `json:"amount"`
	Status              string                   `json:"status"`
	Platform            string                   `json:"platform"`
	TicketCount         int                      `json:"ticket_count"`
	AddOns              []booking.AddOnSelection `json:"add_ons"`
	PrimaryTicketTypeID string                   `json:"primary_ticket_type_id"`
	GroupSize           int                      `json:"group_size"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

type BookingFilter struct {
	Date   *string
	Status *string
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// UserCredentialView carries the password hash and is only ever handed to
// the auth command side.
type UserCredentialView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}
