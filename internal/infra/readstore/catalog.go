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
	"github.com/shopspring/decimal"
)

type CatalogReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCatalogReadStore(pool *pgxpool.Pool, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{pool: pool, logger: logger}
}

const ticketTypeColumns = `id, name, base_cost::text, is_active, created_at, updated_at`

func (s *CatalogReadStore) ListTicketTypes(ctx context.Context, activeOnly bool) ([]*queries.TicketTypeView, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list ticket types", err)
	}
	defer rows.Close()

	var views []*queries.TicketTypeView
	for rows.Next() {
		view, err := scanTicketType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan ticket type", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (s *CatalogReadStore) FindTicketTypeByID(ctx context.Context, id uuid.UUID) (*queries.TicketTypeView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+ticketTypeColumns+` FROM ticket_types WHERE id = $1`, id)
	view, err := scanTicketType(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "ticket type not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find ticket type", err)
	}
	return view, nil
}

const addOnColumns = `id, name, price::text, is_active, created_at, updated_at`

func (s *CatalogReadStore) ListAddOns(ctx context.Context, activeOnly bool) ([]*queries.AddOnView, error) {
	query := `SELECT ` + addOnColumns + ` FROM add_ons`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list add-ons", err)
	}
	defer rows.Close()

	var views []*queries.AddOnView
	for rows.Next() {
		view, err := scanAddOn(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan add-on", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (s *CatalogReadStore) FindAddOnByID(ctx context.Context, id uuid.UUID) (*queries.AddOnView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+addOnColumns+` FROM add_ons WHERE id = $1`, id)
	view, err := scanAddOn(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "add-on not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find add-on", err)
	}
	return view, nil
}

const timeSlotColumns = `id, label, start_time, end_time, capacity, is_active, created_at, updated_at`

func (s *CatalogReadStore) ListTimeSlots(ctx context.Context, activeOnly bool) ([]*queries.TimeSlotView, error) {
	query := `SELECT ` + timeSlotColumns + ` FROM time_slots`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY start_time`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list time slots", err)
	}
	defer rows.Close()

	var views []*queries.TimeSlotView
	for rows.Next() {
		var v queries.TimeSlotView
		if err := rows.Scan(&v.ID, &v.Label, &v.StartTime, &v.EndTime, &v.Capacity, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan time slot", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}

func (s *CatalogReadStore) FindTimeSlotByID(ctx context.Context, id uuid.UUID) (*queries.TimeSlotView, error) {
	var v queries.TimeSlotView
	err := s.pool.QueryRow(ctx, `SELECT `+timeSlotColumns+` FROM time_slots WHERE id = $1`, id).
		Scan(&v.ID, &v.Label, &v.StartTime, &v.EndTime, &v.Capacity, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "time slot not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find time slot", err)
	}
	return &v, nil
}

func scanTicketType(row pgx.Row) (*queries.TicketTypeView, error) {
	var (
		v        queries.TicketTypeView
		baseCost string
	)
	if err := row.Scan(&v.ID, &v.Name, &baseCost, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	cost, err := decimal.NewFromString(baseCost)
	if err != nil {
		return nil, err
	}
	v.BaseCost = cost
	return &v, nil
}

func scanAddOn(row pgx.Row) (*queries.AddOnView, error) {
	var (
		v     queries.AddOnView
		price string
	)
	if err := row.Scan(&v.ID, &v.Name, &price, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	v.Price = p
	return &v, nil
}
