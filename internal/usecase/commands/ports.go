package commands

import (
	"context"
	"time"

	"boxoffice/internal/domain/booking"
	"boxoffice/internal/domain/catalog"
	"boxoffice/internal/domain/customer"
	"boxoffice/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side ports. Implementations live in internal/infra/repository.

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error
}

type CatalogRepository interface {
	CreateTicketType(ctx context.Context, t *catalog.TicketType) error
	UpdateTicketType(ctx context.Context, t *catalog.TicketType) error
	SetTicketTypeActive(ctx context.Context, id uuid.UUID, active bool) error
	CreateAddOn(ctx context.Context, a *catalog.AddOn) error
	UpdateAddOn(ctx context.Context, a *catalog.AddOn) error
	SetAddOnActive(ctx context.Context, id uuid.UUID, active bool) error
	CreateTimeSlot(ctx context.Context, s *catalog.TimeSlotDef) error
	UpdateTimeSlot(ctx context.Context, s *catalog.TimeSlotDef) error
	SetTimeSlotActive(ctx context.Context, id uuid.UUID, active bool) error
}

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
	Update(ctx context.Context, p *promotion.Promotion) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// Severity levels for terminal notices, matching what the dashboard's toast
// sink accepts.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notice is the transient notification a spot mutation produces. The ledger
// only emits these; display and dismissal timing belong to the sink.
type Notice struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier receives every terminal notice. The default sink logs them; a
// push channel to the dashboard would implement the same port.
type Notifier interface {
	Notify(ctx context.Context, terminalID string, notice Notice)
}
