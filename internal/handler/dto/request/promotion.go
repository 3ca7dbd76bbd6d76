package request

import (
	"time"

	"boxoffice/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

type CreatePromotionRequest struct {
	Code       string          `json:"code" binding:"required"`
	Kind       string          `json:"kind" binding:"required,oneof=fixed percent"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidTo    *time.Time      `json:"valid_to,omitempty"`
	UsageLimit *int            `json:"usage_limit,omitempty"`
}

func (r CreatePromotionRequest) ToDomain() (*promotion.Promotion, error) {
	kind, err := promotion.NewKind(r.Kind)
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(r.Code, kind, r.Amount, r.ValidFrom, r.ValidTo, r.UsageLimit)
}

type UpdatePromotionRequest struct {
	Code       string          `json:"code" binding:"required"`
	Kind       string          `json:"kind" binding:"required,oneof=fixed percent"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidTo    *time.Time      `json:"valid_to,omitempty"`
	UsageLimit *int            `json:"usage_limit,omitempty"`
}
