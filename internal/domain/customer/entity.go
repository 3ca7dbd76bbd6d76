package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("customer name cannot be empty")
	ErrNoContactField = errors.New("at least one of name, email or phone is required")
)

// WalkInID is the sentinel id used when no specific customer is selected at
// the spot terminal. It is never written to the customer catalog.
const WalkInID = "walkin"

const sessionIDPrefix = "temp-"

// Ref is the lightweight customer reference carried by an in-session order.
// ID is either WalkInID, a session-local temporary id, or the string form of
// a cataloged customer's UUID.
type Ref struct {
	ID   string
	Name string
}

func WalkIn() Ref {
	return Ref{ID: WalkInID, Name: "Walk-in Customer"}
}

func (r Ref) IsWalkIn() bool {
	return r.ID == WalkInID
}

func (r Ref) IsSessionLocal() bool {
	return strings.HasPrefix(r.ID, sessionIDPrefix)
}

// NewSessionRef builds a session-local reference for a manually entered
// customer. Persistence of such customers is not this package's concern.
func NewSessionRef(name, email, phone string) (Ref, error) {
	name = strings.TrimSpace(name)
	if name == "" && strings.TrimSpace(email) == "" && strings.TrimSpace(phone) == "" {
		return Ref{}, ErrNoContactField
	}
	display := name
	if display == "" {
		display = "Walk-in Customer"
	}
	return Ref{ID: sessionIDPrefix + uuid.NewString(), Name: display}, nil
}

// Customer is a cataloged customer managed by the admin dashboard.
type Customer struct {
	id            uuid.UUID
	name          string
	email         string
	phone         string
	loyaltyPoints int
	pastBookings  string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCustomer(name, email, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Customer{
		id:    uuid.New(),
		name:  name,
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}, nil
}

func ReconstructCustomer(id uuid.UUID, name, email, phone string, loyaltyPoints int, pastBookings string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		loyaltyPoints: loyaltyPoints,
		pastBookings:  pastBookings,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (c *Customer) Ref() Ref {
	return Ref{ID: c.id.String(), Name: c.name}
}

func (c *Customer) AddLoyaltyPoints(points int) {
	if points < 0 {
		return
	}
	c.loyaltyPoints += points
}

func (c *Customer) ID() uuid.UUID       { return c.id }
func (c *Customer) Name() string        { return c.name }
func (c *Customer) Email() string       { return c.email }
func (c *Customer) Phone() string       { return c.phone }
func (c *Customer) LoyaltyPoints() int  { return c.loyaltyPoints }
func (c *Customer) PastBookings() string { return c.pastBookings }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
