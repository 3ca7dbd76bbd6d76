package readstore

import (
	"context"
	"errors"
	"log/slog"

	"boxoffice/internal/infra"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCustomerReadStore(pool *pgxpool.Pool, logger *slog.Logger) *CustomerReadStore {
	return &CustomerReadStore{pool: pool, logger: logger}
}

const customerColumns = `id, name, email, phone, loyalty_points, past_bookings, created_at, updated_at`

func (s *CustomerReadStore) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list customers", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	var v queries.CustomerView
	err := s.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.LoyaltyPoints, &v.PastBookings, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "customer not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find customer", err)
	}
	return &v, nil
}

func (s *CustomerReadStore) Search(ctx context.Context, term string) ([]*queries.CustomerView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		 ORDER BY name`, term)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to search customers", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

func collectCustomers(rows pgx.Rows) ([]*queries.CustomerView, error) {
	var views []*queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.LoyaltyPoints, &v.PastBookings, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
