package queries

import (
	"context"

	"boxoffice/internal/infra"
	"boxoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type PromotionReadStore interface {
	List(ctx context.Context) ([]*PromotionView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	FindByCode(ctx context.Context, code string) (*PromotionView, error)
}

type PromotionQueries interface {
	List(ctx context.Context) ([]*PromotionView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
}

type promotionQueriesImpl struct {
	readStore PromotionReadStore
}

func NewPromotionQueries(readStore PromotionReadStore) PromotionQueries {
	return &promotionQueriesImpl{readStore: readStore}
}

func (q *promotionQueriesImpl) List(ctx context.Context) ([]*PromotionView, error) {
	return q.readStore.List(ctx)
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPromotionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
