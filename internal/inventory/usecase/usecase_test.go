package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeRepo struct {
	rows     map[string]*model.Inventory
	lastList *dto.InventoryFilters
}

func key(productID string, storeID *string) string {
	if storeID == nil {
		return productID
	}
	return productID + ":" + *storeID
}

func (r *fakeRepo) GetByProduct(_ context.Context, productID string, storeID *string) (*model.Inventory, error) {
	inv, ok := r.rows[key(productID, storeID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, filters *dto.InventoryFilters) ([]model.Inventory, int, error) {
	r.lastList = filters
	var out []model.Inventory
	for _, inv := range r.rows {
		out = append(out, *inv)
	}
	return out, len(out), nil
}

func (r *fakeRepo) AdjustStockWithMovement(_ context.Context, inv *model.Inventory, _ *model.InventoryMovement) error {
	cp := *inv
	r.rows[key(inv.ProductID, inv.StoreID)] = &cp
	return nil
}

func (r *fakeRepo) ListMovements(_ context.Context, _ *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return nil, 0, nil
}

func TestGetProductInventoryReturnsZeroStockWhenMissing(t *testing.T) {
	repo := &fakeRepo{rows: map[string]*model.Inventory{}}
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	inv, err := uc.GetProductInventory(context.Background(), "p-1", nil)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "p-1", inv.ProductID)
	assert.Zero(t, inv.Quantity)
}

func TestGetProductInventoryReturnsExistingRow(t *testing.T) {
	store := "s-1"
	repo := &fakeRepo{rows: map[string]*model.Inventory{
		"p-1:s-1": {ID: "inv-1", ProductID: "p-1", StoreID: &store, Quantity: 7},
	}}
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	inv, err := uc.GetProductInventory(context.Background(), "p-1", &store)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, 7.0, inv.Quantity)
}

func TestListLowStockSetsFilter(t *testing.T) {
	repo := &fakeRepo{rows: map[string]*model.Inventory{}}
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	_, _, err := uc.ListLowStock(context.Background(), nil, 2, 10)
	require.NoError(t, err)
	require.NotNil(t, repo.lastList)
	assert.True(t, repo.lastList.LowStock)
	assert.Equal(t, 2, repo.lastList.Page)
	assert.Equal(t, 10, repo.lastList.PageSize)
}
