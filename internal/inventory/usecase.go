package inventory

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type UseCase interface {
	GetProductInventory(ctx context.Context, productID string, storeID *string) (*model.Inventory, error)
	ListLowStock(ctx context.Context, storeID *string, page, pageSize int) ([]model.Inventory, int, error)
	AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
