package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/cache"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, cache *cache.RedisClient, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID string, storeID *string) (*model.Inventory, error) {
	inv, err := uc.repo.GetByProduct(ctx, productID, storeID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		// No record yet means zero stock, not an error.
		return &model.Inventory{
			ProductID: productID,
			StoreID:   storeID,
			Quantity:  0,
		}, nil
	}
	return inv, nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, storeID *string, page, pageSize int) ([]model.Inventory, int, error) {
	return uc.repo.FindAll(ctx, &dto.InventoryFilters{
		StoreID:  storeID,
		LowStock: true,
		Page:     page,
		PageSize: pageSize,
	})
}

func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error) {
	lockKey := fmt.Sprintf("lock:inventory:%s", input.ProductID)
	if input.StoreID != nil {
		lockKey += ":" + *input.StoreID
	}

	lockValue := uuid.New().String()
	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	if !acquired {
		return nil, errors.New("system busy, please try again later (lock)")
	}

	defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)

	inv, err := uc.repo.GetByProduct(ctx, input.ProductID, input.StoreID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if inv == nil {
		inv = &model.Inventory{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			StoreID:   input.StoreID,
			Quantity:  0,
			UpdatedAt: now,
		}
	}

	quantityBefore := inv.Quantity
	inv.Quantity += input.QuantityChange
	inv.UpdatedAt = now

	if inv.Quantity < 0 {
		return nil, errors.New("insufficient inventory")
	}

	var refID *string
	if input.ReferenceID != "" {
		refID = &input.ReferenceID
	}
	var refType *string
	if input.ReferenceType != "" {
		refType = &input.ReferenceType
	}

	var createdBy *string
	if input.UserID != "" && input.UserID != "system" {
		createdBy = &input.UserID
	}

	movement := &model.InventoryMovement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		StoreID:        input.StoreID,
		MovementType:   "adjustment",
		QuantityChange: input.QuantityChange,
		QuantityBefore: quantityBefore,
		QuantityAfter:  inv.Quantity,
		ReferenceType:  refType,
		ReferenceID:    refID,
		Notes:          input.Reason,
		CreatedBy:      createdBy,
		CreatedAt:      now,
	}

	if err := uc.repo.AdjustStockWithMovement(ctx, inv, movement); err != nil {
		return nil, err
	}

	return inv, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}
