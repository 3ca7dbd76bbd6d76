package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"boxoffice/internal/domain/booking"
	"boxoffice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingRepository(pool *pgxpool.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{pool: pool, logger: logger}
}

// Create inserts a booking inside the caller's transaction so checkout can
// pair it with its notification job atomically.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error) {
	addOnsJSON, err := json.Marshal(b.AddOns())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode add-ons", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (id, customer_id, customer_name, date, time, amount, status,
			platform, ticket_count, add_ons, primary_ticket_type_id, group_size, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`,
		b.ID(), b.CustomerID(), b.CustomerName(), b.Date(), b.Time(), b.Amount().String(),
		string(b.Status()), b.Platform(), b.TicketCount(), addOnsJSON, b.PrimaryTicketTypeID(), b.GroupSize(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to insert booking", err)
	}
	return b.ID(), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}
