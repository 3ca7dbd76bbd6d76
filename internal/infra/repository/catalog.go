package repository

import (
	"context"
	"log/slog"

	"boxoffice/internal/domain/catalog"
	"boxoffice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCatalogRepository(pool *pgxpool.Pool, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{pool: pool, logger: logger}
}

func (r *CatalogRepository) CreateTicketType(ctx context.Context, t *catalog.TicketType) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ticket_types (id, name, base_cost, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())`,
		t.ID(), t.Name(), t.BaseCost().String(), t.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to insert ticket type", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateTicketType(ctx context.Context, t *catalog.TicketType) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ticket_types SET name = $2, base_cost = $3, is_active = $4, updated_at = now() WHERE id = $1`,
		t.ID(), t.Name(), t.BaseCost().String(), t.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to update ticket type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "ticket type not found", nil)
	}
	return nil
}

func (r *CatalogRepository) SetTicketTypeActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ticket_types SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to toggle ticket type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "ticket type not found", nil)
	}
	return nil
}

func (r *CatalogRepository) CreateAddOn(ctx context.Context, a *catalog.AddOn) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO add_ons (id, name, price, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())`,
		a.ID(), a.Name(), a.Price().String(), a.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to insert add-on", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateAddOn(ctx context.Context, a *catalog.AddOn) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE add_ons SET name = $2, price = $3, is_active = $4, updated_at = now() WHERE id = $1`,
		a.ID(), a.Name(), a.Price().String(), a.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to update add-on", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "add-on not found", nil)
	}
	return nil
}

func (r *CatalogRepository) SetAddOnActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE add_ons SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to toggle add-on", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "add-on not found", nil)
	}
	return nil
}

func (r *CatalogRepository) CreateTimeSlot(ctx context.Context, s *catalog.TimeSlotDef) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO time_slots (id, label, start_time, end_time, capacity, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		s.ID(), s.Label(), s.StartTime(), s.EndTime(), s.Capacity(), s.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to insert time slot", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateTimeSlot(ctx context.Context, s *catalog.TimeSlotDef) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE time_slots SET label = $2, start_time = $3, end_time = $4, capacity = $5, is_active = $6, updated_at = now()
		 WHERE id = $1`,
		s.ID(), s.Label(), s.StartTime(), s.EndTime(), s.Capacity(), s.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to update time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "time slot not found", nil)
	}
	return nil
}

func (r *CatalogRepository) SetTimeSlotActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE time_slots SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to toggle time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "time slot not found", nil)
	}
	return nil
}
