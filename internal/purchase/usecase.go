package purchase

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase/dto"
)

type UseCase interface {
	CreatePurchase(ctx context.Context, input *dto.PurchaseInput) (*model.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*model.Purchase, error)
	ListPurchases(ctx context.Context, filters *dto.Filters) ([]model.Purchase, int, error)
	UpdatePurchase(ctx context.Context, id string, input *dto.PurchaseInput) (*model.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.PurchaseOrder, error)
	GetOrder(ctx context.Context, id string) (*model.PurchaseOrder, error)
	ListOrders(ctx context.Context, filters *dto.Filters) ([]model.PurchaseOrder, int, error)
	UpdateOrder(ctx context.Context, id string, input *dto.OrderInput) (*model.PurchaseOrder, error)
	DeleteOrder(ctx context.Context, id string) error

	CreateReturn(ctx context.Context, input *dto.ReturnInput) (*model.PurchaseReturn, error)
	GetReturn(ctx context.Context, id string) (*model.PurchaseReturn, error)
	ListReturns(ctx context.Context, filters *dto.Filters) ([]model.PurchaseReturn, int, error)
	UpdateReturn(ctx context.Context, id string, input *dto.ReturnInput) (*model.PurchaseReturn, error)
	DeleteReturn(ctx context.Context, id string) error

	HubStats(ctx context.Context) (*dto.HubStats, error)
}
