package repository

import (
	"context"
	"log/slog"

	"boxoffice/internal/domain/customer"
	"boxoffice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCustomerRepository(pool *pgxpool.Pool, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{pool: pool, logger: logger}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (id, name, email, phone, loyalty_points, past_bookings, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		c.ID(), c.Name(), c.Email(), c.Phone(), c.LoyaltyPoints(), c.PastBookings(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to insert customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE customers SET name = $2, email = $3, phone = $4, loyalty_points = $5,
			past_bookings = $6, updated_at = now()
		 WHERE id = $1`,
		c.ID(), c.Name(), c.Email(), c.Phone(), c.LoyaltyPoints(), c.PastBookings(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}
