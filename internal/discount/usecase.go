package discount

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type UseCase interface {
	CreatePlan(ctx context.Context, input *dto.PlanInput) (*model.DiscountPlan, error)
	GetPlan(ctx context.Context, id string) (*model.DiscountPlan, error)
	ListPlans(ctx context.Context, filters *dto.ListFilters) ([]model.DiscountPlan, int, error)
	UpdatePlan(ctx context.Context, id string, input *dto.PlanInput) (*model.DiscountPlan, error)
	DeletePlan(ctx context.Context, id string) error

	CreateDiscount(ctx context.Context, input *dto.DiscountInput) (*model.Discount, error)
	GetDiscount(ctx context.Context, id string) (*model.Discount, error)
	ListDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, int, error)
	UpdateDiscount(ctx context.Context, id string, input *dto.DiscountInput) (*model.Discount, error)
	DeleteDiscount(ctx context.Context, id string) error
}
