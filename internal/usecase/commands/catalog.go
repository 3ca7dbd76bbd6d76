package commands

import (
	"context"

	"boxoffice/internal/domain/catalog"
	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/infra"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	CreateTicketType(ctx context.Context, req reqdto.CreateTicketTypeRequest) (*queries.TicketTypeView, error)
	UpdateTicketType(ctx context.Context, id uuid.UUID, req reqdto.UpdateTicketTypeRequest) (*queries.TicketTypeView, error)
	SetTicketTypeActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateAddOn(ctx context.Context, req reqdto.CreateAddOnRequest) (*queries.AddOnView, error)
	UpdateAddOn(ctx context.Context, id uuid.UUID, req reqdto.UpdateAddOnRequest) (*queries.AddOnView, error)
	SetAddOnActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateTimeSlot(ctx context.Context, req reqdto.CreateTimeSlotRequest) (*queries.TimeSlotView, error)
	UpdateTimeSlot(ctx context.Context, id uuid.UUID, req reqdto.UpdateTimeSlotRequest) (*queries.TimeSlotView, error)
	SetTimeSlotActive(ctx context.Context, id uuid.UUID, active bool) error
}

type catalogCommandsImpl struct {
	repo           CatalogRepository
	catalogQueries queries.CatalogQueries
}

func NewCatalogCommands(repo CatalogRepository, catalogQueries queries.CatalogQueries) CatalogCommands {
	return &catalogCommandsImpl{repo: repo, catalogQueries: catalogQueries}
}

func (c *catalogCommandsImpl) CreateTicketType(ctx context.Context, req reqdto.CreateTicketTypeRequest) (*queries.TicketTypeView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.CreateTicketType(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetTicketType(ctx, entity.ID())
}

func (c *catalogCommandsImpl) UpdateTicketType(ctx context.Context, id uuid.UUID, req reqdto.UpdateTicketTypeRequest) (*queries.TicketTypeView, error) {
	view, err := c.catalogQueries.GetTicketType(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := catalog.ReconstructTicketType(view.ID, view.Name, view.BaseCost, view.IsActive, view.CreatedAt, view.UpdatedAt)

	if req.Name != nil {
		if err := entity.Rename(*req.Name); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if req.BaseCost != nil {
		if err := entity.Reprice(*req.BaseCost); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.repo.UpdateTicketType(ctx, entity); err != nil {
		return nil, markWriteErr(err, errs.ErrTicketTypeNotFound)
	}
	return c.catalogQueries.GetTicketType(ctx, id)
}

func (c *catalogCommandsImpl) SetTicketTypeActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := c.repo.SetTicketTypeActive(ctx, id, active); err != nil {
		return markWriteErr(err, errs.ErrTicketTypeNotFound)
	}
	return nil
}

func (c *catalogCommandsImpl) CreateAddOn(ctx context.Context, req reqdto.CreateAddOnRequest) (*queries.AddOnView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.CreateAddOn(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetAddOn(ctx, entity.ID())
}

func (c *catalogCommandsImpl) UpdateAddOn(ctx context.Context, id uuid.UUID, req reqdto.UpdateAddOnRequest) (*queries.AddOnView, error) {
	view, err := c.catalogQueries.GetAddOn(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := catalog.ReconstructAddOn(view.ID, view.Name, view.Price, view.IsActive, view.CreatedAt, view.UpdatedAt)

	if req.Name != nil {
		if err := entity.Rename(*req.Name); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if req.Price != nil {
		if err := entity.Reprice(*req.Price); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.repo.UpdateAddOn(ctx, entity); err != nil {
		return nil, markWriteErr(err, errs.ErrAddOnNotFound)
	}
	return c.catalogQueries.GetAddOn(ctx, id)
}

func (c *catalogCommandsImpl) SetAddOnActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := c.repo.SetAddOnActive(ctx, id, active); err != nil {
		return markWriteErr(err, errs.ErrAddOnNotFound)
	}
	return nil
}

func (c *catalogCommandsImpl) CreateTimeSlot(ctx context.Context, req reqdto.CreateTimeSlotRequest) (*queries.TimeSlotView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.CreateTimeSlot(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetTimeSlot(ctx, entity.ID())
}

func (c *catalogCommandsImpl) UpdateTimeSlot(ctx context.Context, id uuid.UUID, req reqdto.UpdateTimeSlotRequest) (*queries.TimeSlotView, error) {
	view, err := c.catalogQueries.GetTimeSlot(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := catalog.ReconstructTimeSlotDef(view.ID, view.Label, view.StartTime, view.EndTime, view.Capacity, view.IsActive, view.CreatedAt, view.UpdatedAt)

	if req.Capacity != nil {
		if err := entity.Resize(*req.Capacity); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.repo.UpdateTimeSlot(ctx, entity); err != nil {
		return nil, markWriteErr(err, errs.ErrTimeSlotNotFound)
	}
	return c.catalogQueries.GetTimeSlot(ctx, id)
}

func (c *catalogCommandsImpl) SetTimeSlotActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := c.repo.SetTimeSlotActive(ctx, id, active); err != nil {
		return markWriteErr(err, errs.ErrTimeSlotNotFound)
	}
	return nil
}

// markWriteErr maps a repository not-found onto the aggregate's sentinel
// and everything else onto the generic database failure.
func markWriteErr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
