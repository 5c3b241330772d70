package purchase

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase/dto"
)

type Repository interface {
	CreatePurchase(ctx context.Context, p *model.Purchase) error
	FindPurchaseByID(ctx context.Context, id string) (*model.Purchase, error)
	FindAllPurchases(ctx context.Context, filters *dto.Filters) ([]model.Purchase, int, error)
	UpdatePurchase(ctx context.Context, p *model.Purchase) error
	DeletePurchase(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, po *model.PurchaseOrder) error
	FindOrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
	FindAllOrders(ctx context.Context, filters *dto.Filters) ([]model.PurchaseOrder, int, error)
	UpdateOrder(ctx context.Context, po *model.PurchaseOrder) error
	DeleteOrder(ctx context.Context, id string) error

	CreateReturn(ctx context.Context, pr *model.PurchaseReturn) error
	FindReturnByID(ctx context.Context, id string) (*model.PurchaseReturn, error)
	FindAllReturns(ctx context.Context, filters *dto.Filters) ([]model.PurchaseReturn, int, error)
	UpdateReturn(ctx context.Context, pr *model.PurchaseReturn) error
	DeleteReturn(ctx context.Context, id string) error

	HubStats(ctx context.Context) (*dto.HubStats, error)
}
