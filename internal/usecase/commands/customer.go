package commands

import (
	"context"

	"boxoffice/internal/domain/customer"
	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	repo            CustomerRepository
	customerQueries queries.CustomerQueries
}

func NewCustomerCommands(repo CustomerRepository, customerQueries queries.CustomerQueries) CustomerCommands {
	return &customerCommandsImpl{repo: repo, customerQueries: customerQueries}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.customerQueries.GetByID(ctx, entity.ID())
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error) {
	view, err := c.customerQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft, err := customer.NewCustomer(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity := customer.ReconstructCustomer(
		view.ID, draft.Name(), draft.Email(), draft.Phone(),
		view.LoyaltyPoints, view.PastBookings, view.CreatedAt, view.UpdatedAt,
	)

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, markWriteErr(err, errs.ErrCustomerNotFound)
	}
	return c.customerQueries.GetByID(ctx, id)
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return markWriteErr(err, errs.ErrCustomerNotFound)
	}
	return nil
}
