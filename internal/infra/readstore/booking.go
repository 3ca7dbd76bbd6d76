package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"boxoffice/internal/domain/booking"
	"boxoffice/internal/infra"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BookingReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingReadStore(pool *pgxpool.Pool, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{pool: pool, logger: logger}
}

const bookingColumns = `id, customer_id, customer_name, date, time, amount::text, status,
	platform, ticket_count, add_ons, primary_ticket_type_id, group_size, created_at, updated_at`

func (s *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []any{}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += ` AND date = $1`
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		if len(args) == 1 {
			query += ` AND status = $1`
		} else {
			query += ` AND status = $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	view, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find booking", err)
	}
	return view, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		amount     string
		addOnsJSON []byte
	)
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.Date, &v.Time, &amount, &v.Status,
		&v.Platform, &v.TicketCount, &addOnsJSON, &v.PrimaryTicketTypeID, &v.GroupSize,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	v.Amount = amt

	v.AddOns = []booking.AddOnSelection{}
	if len(addOnsJSON) > 0 {
		if err := json.Unmarshal(addOnsJSON, &v.AddOns); err != nil {
			return nil, err
		}
	}
	return &v, nil
}
