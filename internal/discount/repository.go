package discount

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	CreatePlan(ctx context.Context, plan *model.DiscountPlan) error
	FindPlanByID(ctx context.Context, id string) (*model.DiscountPlan, error)
	FindAllPlans(ctx context.Context, filters *dto.ListFilters) ([]model.DiscountPlan, int, error)
	UpdatePlan(ctx context.Context, plan *model.DiscountPlan) error
	DeletePlan(ctx context.Context, id string) error

	CreateDiscount(ctx context.Context, discount *model.Discount) error
	FindDiscountByID(ctx context.Context, id string) (*model.Discount, error)
	FindDiscountByCode(ctx context.Context, code string) (*model.Discount, error)
	FindAllDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, int, error)
	UpdateDiscount(ctx context.Context, discount *model.Discount) error
	DeleteDiscount(ctx context.Context, id string) error
}
