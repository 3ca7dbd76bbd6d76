package queries

import (
	"context"

	"boxoffice/internal/infra"
	"boxoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	List(ctx context.Context) ([]*CustomerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	Search(ctx context.Context, term string) ([]*CustomerView, error)
}

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	Search(ctx context.Context, term string) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.readStore.List(ctx)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *customerQueriesImpl) Search(ctx context.Context, term string) ([]*CustomerView, error) {
	return q.readStore.Search(ctx, term)
}
