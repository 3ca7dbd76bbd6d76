package readstore

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"boxoffice/internal/infra"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PromotionReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPromotionReadStore(pool *pgxpool.Pool, logger *slog.Logger) *PromotionReadStore {
	return &PromotionReadStore{pool: pool, logger: logger}
}

const promotionColumns = `id, code, kind, amount::text, valid_from, valid_to, usage_limit,
	used_count, is_active, created_at, updated_at`

func (s *PromotionReadStore) List(ctx context.Context) ([]*queries.PromotionView, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list promotions", err)
	}
	defer rows.Close()

	var views []*queries.PromotionView
	for rows.Next() {
		view, err := scanPromotion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan promotion", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (s *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PromotionView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id)
	view, err := scanPromotion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "promotion not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find promotion", err)
	}
	return view, nil
}

func (s *PromotionReadStore) FindByCode(ctx context.Context, code string) (*queries.PromotionView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE code = $1`, strings.ToUpper(code))
	view, err := scanPromotion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "promotion not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find promotion", err)
	}
	return view, nil
}

func scanPromotion(row pgx.Row) (*queries.PromotionView, error) {
	var (
		v      queries.PromotionView
		amount string
	)
	err := row.Scan(
		&v.ID, &v.Code, &v.Kind, &amount, &v.ValidFrom, &v.ValidTo, &v.UsageLimit,
		&v.UsedCount, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	v.Amount = amt
	return &v, nil
}
