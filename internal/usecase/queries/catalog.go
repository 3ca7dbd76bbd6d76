package queries

import (
	"context"

	"boxoffice/internal/infra"
	"boxoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	ListTicketTypes(ctx context.Context, activeOnly bool) ([]*TicketTypeView, error)
	FindTicketTypeByID(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
	ListAddOns(ctx context.Context, activeOnly bool) ([]*AddOnView, error)
	FindAddOnByID(ctx context.Context, id uuid.UUID) (*AddOnView, error)
	ListTimeSlots(ctx context.Context, activeOnly bool) ([]*TimeSlotView, error)
	FindTimeSlotByID(ctx context.Context, id uuid.UUID) (*TimeSlotView, error)
}

type CatalogQueries interface {
	ListTicketTypes(ctx context.Context, activeOnly bool) ([]*TicketTypeView, error)
	GetTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
	ListAddOns(ctx context.Context, activeOnly bool) ([]*AddOnView, error)
	GetAddOn(ctx context.Context, id uuid.UUID) (*AddOnView, error)
	ListTimeSlots(ctx context.Context, activeOnly bool) ([]*TimeSlotView, error)
	GetTimeSlot(ctx context.Context, id uuid.UUID) (*TimeSlotView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListTicketTypes(ctx context.Context, activeOnly bool) ([]*TicketTypeView, error) {
	return q.readStore.ListTicketTypes(ctx, activeOnly)
}

func (q *catalogQueriesImpl) GetTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error) {
	view, err := q.readStore.FindTicketTypeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTicketTypeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListAddOns(ctx context.Context, activeOnly bool) ([]*AddOnView, error) {
	return q.readStore.ListAddOns(ctx, activeOnly)
}

func (q *catalogQueriesImpl) GetAddOn(ctx context.Context, id uuid.UUID) (*AddOnView, error) {
	view, err := q.readStore.FindAddOnByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAddOnNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListTimeSlots(ctx context.Context, activeOnly bool) ([]*TimeSlotView, error) {
	return q.readStore.ListTimeSlots(ctx, activeOnly)
}

func (q *catalogQueriesImpl) GetTimeSlot(ctx context.Context, id uuid.UUID) (*TimeSlotView, error) {
	view, err := q.readStore.FindTimeSlotByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTimeSlotNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
