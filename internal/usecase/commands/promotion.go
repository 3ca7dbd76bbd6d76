package commands

import (
	"context"

	"boxoffice/internal/domain/promotion"
	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/infra"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionCommands interface {
	Create(ctx context.Context, req reqdto.CreatePromotionRequest) (*queries.PromotionView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePromotionRequest) (*queries.PromotionView, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type promotionCommandsImpl struct {
	repo             PromotionRepository
	promotionQueries queries.PromotionQueries
}

func NewPromotionCommands(repo PromotionRepository, promotionQueries queries.PromotionQueries) PromotionCommands {
	return &promotionCommandsImpl{repo: repo, promotionQueries: promotionQueries}
}

func (c *promotionCommandsImpl) Create(ctx context.Context, req reqdto.CreatePromotionRequest) (*queries.PromotionView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateCode)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.promotionQueries.GetByID(ctx, entity.ID())
}

func (c *promotionCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePromotionRequest) (*queries.PromotionView, error) {
	existing, err := c.promotionQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kind, err := promotion.NewKind(req.Kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	draft, err := promotion.NewPromotion(req.Code, kind, req.Amount, req.ValidFrom, req.ValidTo, req.UsageLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// The validated draft carries the new values; identity, usage count and
	// the active flag stay with the stored row.
	entity := promotion.ReconstructPromotion(
		existing.ID, draft.Code(), draft.Kind(), draft.Amount(),
		draft.ValidFrom(), draft.ValidTo(), draft.UsageLimit(),
		existing.UsedCount, existing.IsActive, existing.CreatedAt, existing.UpdatedAt,
	)
	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateCode)
		}
		return nil, markWriteErr(err, errs.ErrPromotionNotFound)
	}
	return c.promotionQueries.GetByID(ctx, id)
}

func (c *promotionCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := c.repo.SetActive(ctx, id, active); err != nil {
		return markWriteErr(err, errs.ErrPromotionNotFound)
	}
	return nil
}
