package repository

import (
	"context"
	"log/slog"

	"boxoffice/internal/domain/promotion"
	"boxoffice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPromotionRepository(pool *pgxpool.Pool, logger *slog.Logger) *PromotionRepository {
	return &PromotionRepository{pool: pool, logger: logger}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO promotions (id, code, kind, amount, valid_from, valid_to, usage_limit,
			used_count, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`,
		p.ID(), p.Code(), string(p.Kind()), p.Amount().String(), p.ValidFrom(), p.ValidTo(),
		p.UsageLimit(), p.UsedCount(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to insert promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE promotions SET code = $2, kind = $3, amount = $4, valid_from = $5, valid_to = $6,
			usage_limit = $7, is_active = $8, updated_at = now()
		 WHERE id = $1`,
		p.ID(), p.Code(), string(p.Kind()), p.Amount().String(), p.ValidFrom(), p.ValidTo(),
		p.UsageLimit(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, pgErrorKind(err), "failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "promotion not found", nil)
	}
	return nil
}

func (r *PromotionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE promotions SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to toggle promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "promotion not found", nil)
	}
	return nil
}

// IncrementUsage bumps the use counter inside the checkout transaction.
func (r *PromotionRepository) IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error {
	_, err := tx.Exec(ctx,
		`UPDATE promotions SET used_count = used_count + 1, updated_at = now() WHERE code = $1`, code)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to increment promotion usage", err)
	}
	return nil
}
