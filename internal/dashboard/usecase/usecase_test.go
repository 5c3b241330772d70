package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard/dto"
	expensedto "github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	invdto "github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	orderdto "github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeOrderRepo struct {
	summary orderdto.SalesSummary
}

func (f *fakeOrderRepo) Create(_ context.Context, _ *model.Order) error { return nil }
func (f *fakeOrderRepo) FindByID(_ context.Context, _ string) (*model.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FindAll(_ context.Context, _ *orderdto.OrderFilters) ([]model.Order, int, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) Update(_ context.Context, _ *model.Order) error { return nil }
func (f *fakeOrderRepo) SalesSummary(_ context.Context, _, _, _ string) (*orderdto.SalesSummary, error) {
	s := f.summary
	return &s, nil
}

type fakeExpenseRepo struct {
	total float64
}

func (f *fakeExpenseRepo) CreateCategory(_ context.Context, _ *model.ExpenseCategory) error {
	return nil
}
func (f *fakeExpenseRepo) FindCategoryByID(_ context.Context, _ string) (*model.ExpenseCategory, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) FindAllCategories(_ context.Context, _ *expensedto.ListFilters) ([]model.ExpenseCategory, int, error) {
	return nil, 0, nil
}
func (f *fakeExpenseRepo) UpdateCategory(_ context.Context, _ *model.ExpenseCategory) error {
	return nil
}
func (f *fakeExpenseRepo) DeleteCategory(_ context.Context, _ string) error { return nil }
func (f *fakeExpenseRepo) Create(_ context.Context, _ *model.Expense) error { return nil }
func (f *fakeExpenseRepo) FindByID(_ context.Context, _ string) (*model.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) FindAll(_ context.Context, _ *expensedto.ExpenseFilters) ([]model.Expense, int, error) {
	return nil, 0, nil
}
func (f *fakeExpenseRepo) Update(_ context.Context, _ *model.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(_ context.Context, _ string) error         { return nil }
func (f *fakeExpenseRepo) SumByDateRange(_ context.Context, _, _ string) (float64, error) {
	return f.total, nil
}

type fakeInventoryRepo struct {
	lowStock []model.Inventory
}

func (f *fakeInventoryRepo) GetByProduct(_ context.Context, _ string, _ *string) (*model.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) FindAll(_ context.Context, _ *invdto.InventoryFilters) ([]model.Inventory, int, error) {
	return f.lowStock, len(f.lowStock), nil
}
func (f *fakeInventoryRepo) AdjustStockWithMovement(_ context.Context, _ *model.Inventory, _ *model.InventoryMovement) error {
	return nil
}
func (f *fakeInventoryRepo) ListMovements(_ context.Context, _ *invdto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return nil, 0, nil
}

func TestOverviewAggregates(t *testing.T) {
	orders := &fakeOrderRepo{summary: orderdto.SalesSummary{OrderCount: 4, TotalSales: 200}}
	expenses := &fakeExpenseRepo{total: 80}
	inv := &fakeInventoryRepo{lowStock: []model.Inventory{{ProductID: "p-1", Quantity: 1, ReorderPoint: 5}}}

	uc := NewDashboardUseCase(orders, expenses, inv, logger.NewNop())
	overview, err := uc.Overview(context.Background(), &dto.Filters{From: "2024-06-01", To: "2024-06-30"})
	require.NoError(t, err)

	assert.Equal(t, 200.0, overview.Sales.TotalSales)
	assert.Equal(t, 50.0, overview.AverageOrder)
	assert.Equal(t, 80.0, overview.TotalExpenses)
	assert.Equal(t, 120.0, overview.NetIncome)
	require.Len(t, overview.LowStock, 1)
	assert.Equal(t, 1, overview.LowStockCount)
}

func TestOverviewWithNoOrders(t *testing.T) {
	uc := NewDashboardUseCase(&fakeOrderRepo{}, &fakeExpenseRepo{}, &fakeInventoryRepo{}, logger.NewNop())

	overview, err := uc.Overview(context.Background(), &dto.Filters{})
	require.NoError(t, err)
	assert.Zero(t, overview.AverageOrder)
	assert.Zero(t, overview.NetIncome)
}
