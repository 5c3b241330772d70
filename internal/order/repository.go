package order

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	Update(ctx context.Context, order *model.Order) error
	SalesSummary(ctx context.Context, from, to, storeID string) (*dto.SalesSummary, error)
}
